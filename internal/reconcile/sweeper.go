package reconcile

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/entity"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

type Outcome string

const (
	// OutcomeResolved: links updated and the entry deleted.
	OutcomeResolved Outcome = "resolved"
	// OutcomeUntouched: no tier matched, nothing changed.
	OutcomeUntouched Outcome = "untouched"
	// OutcomeFlagged: links updated but the entry lacked its back-reference
	// and was kept for an operator.
	OutcomeFlagged Outcome = "flagged"
	// OutcomeSkipped: the entry was gone or locked by another worker.
	OutcomeSkipped Outcome = "skipped"
)

const missingBackReferenceReason = "matched but donation does not reference this entry"

type SweepOptions struct {
	// FallbackStatus is the project status targeted for donations without a
	// project. Empty disables the campaign-status tier and the status tier
	// for such donations.
	FallbackStatus string
}

type EntryResult struct {
	EntryID    uuid.UUID
	DonationID uuid.UUID
	Outcome    Outcome
	Tier       string
}

// Sweeper retries attribution for a single quarantine entry per call. The
// caller provides the transaction: the entry and donation are locked, and
// link update plus entry deletion must commit together.
type Sweeper struct {
	donations  donation.IDonationTable
	entries    wrongdonation.IWrongDonationTable
	quarantine *Quarantine
	lookup     entity.IEntityLookup
	resolver   *resolver.Resolver
	options    SweepOptions
	logger     logrus.FieldLogger
	tiers      []matchTier
}

func NewSweeper(
	donations donation.IDonationTable,
	entries wrongdonation.IWrongDonationTable,
	lookup entity.IEntityLookup,
	res *resolver.Resolver,
	options SweepOptions,
	logger logrus.FieldLogger,
) *Sweeper {
	s := &Sweeper{
		donations:  donations,
		entries:    entries,
		quarantine: NewQuarantine(donations, entries),
		lookup:     lookup,
		resolver:   res,
		options:    options,
		logger:     logger,
	}
	s.tiers = s.matchTiers()
	return s
}

func (s *Sweeper) ResolveEntry(ctx context.Context, entryID uuid.UUID) (*EntryResult, error) {
	result := &EntryResult{EntryID: entryID, Outcome: OutcomeSkipped}

	entry, err := s.entries.FindByIDForUpdate(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("lock wrong donation: %w", err)
	}
	if entry == nil {
		return result, nil
	}
	result.DonationID = entry.DonationID

	log := s.logger.WithFields(logrus.Fields{
		"wrongDonationId": entry.ID,
		"donationId":      entry.DonationID,
	})

	d, err := s.donations.FindByIDForUpdate(ctx, entry.DonationID)
	if err != nil {
		return nil, fmt.Errorf("lock donation: %w", err)
	}
	if d == nil {
		log.Warn("Sweeper.ResolveEntry.donation missing")
		result.Outcome = OutcomeUntouched
		return result, nil
	}

	match, err := s.match(ctx, d)
	if err != nil {
		return nil, err
	}
	if match == nil {
		log.Debug("Sweeper.ResolveEntry.no match")
		result.Outcome = OutcomeUntouched
		return result, nil
	}
	result.Tier = match.tier
	log = log.WithFields(logrus.Fields{"tid": d.TID, "tier": match.tier, "projectId": match.projectID})

	links := match.apply(d.Links)
	if err := s.donations.UpdateLinks(ctx, d.ID, links); err != nil {
		return nil, fmt.Errorf("update links: %w", err)
	}

	deleted, err := s.quarantine.DeleteIfConsistent(ctx, entry)
	if err != nil {
		return nil, err
	}
	if deleted {
		log.Info("Sweeper.ResolveEntry.resolved")
		result.Outcome = OutcomeResolved
		return result, nil
	}

	if err := s.entries.Flag(ctx, entry.ID, missingBackReferenceReason); err != nil {
		return nil, fmt.Errorf("flag wrong donation: %w", err)
	}
	log.Warn("Sweeper.ResolveEntry.missing back-reference, left for operator")
	result.Outcome = OutcomeFlagged
	return result, nil
}

// match evaluates the tiers in order and returns the first hit.
func (s *Sweeper) match(ctx context.Context, d *donation.Donation) (*tierMatch, error) {
	c := &candidate{donation: d}
	for _, t := range s.tiers {
		if t.needsContext && !c.loaded {
			if err := s.loadContext(ctx, c); err != nil {
				return nil, fmt.Errorf("load match context: %w", err)
			}
		}
		if !t.applies(c) {
			continue
		}
		m, err := t.query(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", t.name, err)
		}
		if m != nil {
			m.tier = t.name
			return m, nil
		}
	}
	return nil, nil
}
