package reconcile

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/entity"
)

const (
	TierExactTID              = "exact-tid"
	TierProjectCampaignStatus = "project-campaign-status"
	TierCampaignStatus        = "campaign-status"
	TierStatus                = "status"
)

// candidate is a quarantined donation plus the context tiers match on.
// Context is loaded once, and only if the exact-tid tier misses.
type candidate struct {
	donation *donation.Donation
	loaded   bool
	// project is the donation's current project, if it still exists.
	project *entity.Project
	// inferredCampaign is only computed for project-less donations.
	inferredCampaign uuid.NullUUID
}

type tierMatch struct {
	tier      string
	projectID uuid.UUID
	// challengeID and referrerID are only carried by exact-tid matches.
	challengeID uuid.NullUUID
	referrerID  uuid.NullUUID
	// transfer sets the transferred project instead of the direct link.
	transfer bool
}

func (m *tierMatch) apply(links donation.Links) donation.Links {
	if m.transfer {
		links.TransferredProjectID = validID(m.projectID)
		return links
	}
	links.ProjectID = validID(m.projectID)
	if m.challengeID.Valid {
		links.ChallengeID = m.challengeID
	}
	if m.referrerID.Valid {
		links.ReferrerAccountID = m.referrerID
	}
	return links
}

type matchTier struct {
	name         string
	needsContext bool
	applies      func(c *candidate) bool
	query        func(ctx context.Context, c *candidate) (*tierMatch, error)
}

// matchTiers lists the tiers from most to least specific.
func (s *Sweeper) matchTiers() []matchTier {
	return []matchTier{
		{
			name:    TierExactTID,
			applies: func(c *candidate) bool { return c.donation.TID != "" },
			query:   s.queryExactTID,
		},
		{
			name:         TierProjectCampaignStatus,
			needsContext: true,
			applies: func(c *candidate) bool {
				return c.project != nil && c.project.CampaignID.Valid && c.project.StatusCode != ""
			},
			query: func(ctx context.Context, c *candidate) (*tierMatch, error) {
				return s.queryTransfer(ctx, entity.ProjectMatch{
					CampaignID: c.project.CampaignID,
					StatusCode: c.project.StatusCode,
					ExcludeID:  validID(c.project.ID),
				})
			},
		},
		{
			name:         TierCampaignStatus,
			needsContext: true,
			applies: func(c *candidate) bool {
				return c.project == nil && c.inferredCampaign.Valid && s.options.FallbackStatus != ""
			},
			query: func(ctx context.Context, c *candidate) (*tierMatch, error) {
				return s.queryTransfer(ctx, entity.ProjectMatch{
					CampaignID: c.inferredCampaign,
					StatusCode: s.options.FallbackStatus,
				})
			},
		},
		{
			name:         TierStatus,
			needsContext: true,
			applies:      func(c *candidate) bool { return s.targetStatus(c) != "" },
			query: func(ctx context.Context, c *candidate) (*tierMatch, error) {
				match := entity.ProjectMatch{StatusCode: s.targetStatus(c)}
				if c.project != nil {
					match.ExcludeID = validID(c.project.ID)
				}
				return s.queryTransfer(ctx, match)
			},
		},
	}
}

func (s *Sweeper) targetStatus(c *candidate) string {
	if c.project != nil && c.project.StatusCode != "" {
		return c.project.StatusCode
	}
	return s.options.FallbackStatus
}

func (s *Sweeper) queryExactTID(ctx context.Context, c *candidate) (*tierMatch, error) {
	other, err := s.donations.FindAttributedByTID(ctx, c.donation.TID, c.donation.ID)
	if err != nil || other == nil {
		return nil, err
	}
	return &tierMatch{
		projectID:   other.Links.ProjectID.UUID,
		challengeID: other.Links.ChallengeID,
		referrerID:  other.Links.ReferrerAccountID,
	}, nil
}

func (s *Sweeper) queryTransfer(ctx context.Context, match entity.ProjectMatch) (*tierMatch, error) {
	project, err := s.lookup.MatchProject(ctx, match)
	if err != nil || project == nil {
		return nil, err
	}
	return &tierMatch{projectID: project.ID, transfer: true}, nil
}

// loadContext fetches the donation's current project, or infers a campaign
// from its challenge or, failing that, from what its description names.
func (s *Sweeper) loadContext(ctx context.Context, c *candidate) error {
	c.loaded = true
	links := c.donation.Links

	if links.ProjectID.Valid {
		project, err := s.lookup.FindProjectByID(ctx, links.ProjectID.UUID)
		if err != nil {
			return err
		}
		c.project = project
	}
	if c.project != nil {
		return nil
	}

	if links.ChallengeID.Valid {
		challenge, err := s.lookup.FindChallengeByID(ctx, links.ChallengeID.UUID)
		if err != nil {
			return err
		}
		if challenge != nil && challenge.CampaignID.Valid {
			c.inferredCampaign = challenge.CampaignID
			return nil
		}
	}

	ref := s.resolver.Resolve(c.donation.Description)
	switch ref.Kind {
	case resolver.KindChallengeCode:
		challenge, err := s.lookup.FindChallengeByCode(ctx, ref.Code)
		if err != nil {
			return err
		}
		if challenge != nil {
			c.inferredCampaign = challenge.CampaignID
		}
	case resolver.KindProjectCode, resolver.KindRawToken:
		project, err := s.lookup.FindProjectByCode(ctx, ref.Code)
		if err != nil {
			return err
		}
		if project != nil {
			c.inferredCampaign = project.CampaignID
		}
	}
	return nil
}
