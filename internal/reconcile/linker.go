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

// Linker records transactions as donations, attaching whatever the
// description resolves to. All writes go through the tables it was built
// with, so the caller controls the transaction boundary.
type Linker struct {
	donations  donation.IDonationTable
	quarantine *Quarantine
	lookup     entity.IEntityLookup
	resolver   *resolver.Resolver
	logger     logrus.FieldLogger
}

func NewLinker(
	donations donation.IDonationTable,
	entries wrongdonation.IWrongDonationTable,
	lookup entity.IEntityLookup,
	res *resolver.Resolver,
	logger logrus.FieldLogger,
) *Linker {
	return &Linker{
		donations:  donations,
		quarantine: NewQuarantine(donations, entries),
		lookup:     lookup,
		resolver:   res,
		logger:     logger,
	}
}

// Ingest records tx exactly once per tid and direction. A redelivery
// returns the existing donation with Duplicate set. actor is the account
// acting on behalf of the transport, if any.
func (l *Linker) Ingest(ctx context.Context, tx Transaction, actor uuid.NullUUID) (*DonationResult, error) {
	direction := Classify(tx.Amount)

	existing, err := l.donations.FindByTID(ctx, tx.TID, direction)
	if err != nil {
		return nil, fmt.Errorf("find donation by tid: %w", err)
	}
	if existing != nil {
		l.logger.WithFields(logrus.Fields{
			"tid":        tx.TID,
			"direction":  direction,
			"donationId": existing.ID,
		}).Info("Linker.Ingest.duplicate")
		return newDonationResult(existing, true), nil
	}

	if direction == donation.DirectionIn {
		return l.HandleInPayment(ctx, tx, actor)
	}
	return l.HandleOutPayment(ctx, tx, actor)
}

// HandleInPayment records a credit. Partial or missing attribution is
// accepted; inbound donations are never quarantined.
func (l *Linker) HandleInPayment(ctx context.Context, tx Transaction, actor uuid.NullUUID) (*DonationResult, error) {
	links, err := l.resolveInbound(ctx, tx.Description)
	if err != nil {
		return nil, err
	}
	if !links.CreatorAccountID.Valid && actor.Valid {
		links.CreatorAccountID = actor
	}

	d, created, err := l.donations.Insert(ctx, newDonationCreate(tx, donation.DirectionIn, links))
	if err != nil {
		return nil, fmt.Errorf("insert inbound donation: %w", err)
	}

	l.logger.WithFields(logrus.Fields{
		"tid":        tx.TID,
		"donationId": d.ID,
		"created":    created,
		"project":    d.Links.ProjectID.Valid,
		"challenge":  d.Links.ChallengeID.Valid,
		"referrer":   d.Links.ReferrerAccountID.Valid,
		"creator":    d.Links.CreatorAccountID.Valid,
	}).Info("Linker.HandleInPayment.recorded")

	return newDonationResult(d, !created), nil
}

// HandleOutPayment records a debit. Its description names the tid of the
// donation it disburses or reverses; the attribution of that donation is
// copied link by link. A debit whose prior donation carries no attribution
// at all is quarantined.
func (l *Linker) HandleOutPayment(ctx context.Context, tx Transaction, actor uuid.NullUUID) (*DonationResult, error) {
	var links donation.Links
	if actor.Valid {
		links.CreatorAccountID = actor
	}

	prior, err := l.findPrior(ctx, tx.Description)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		links.ProjectID = prior.Links.ProjectID
		links.ChallengeID = prior.Links.ChallengeID
		links.ReferrerAccountID = prior.Links.ReferrerAccountID
	}

	d, created, err := l.donations.Insert(ctx, newDonationCreate(tx, donation.DirectionOut, links))
	if err != nil {
		return nil, fmt.Errorf("insert outbound donation: %w", err)
	}
	if !created {
		return newDonationResult(d, true), nil
	}

	log := l.logger.WithFields(logrus.Fields{
		"tid":        tx.TID,
		"donationId": d.ID,
		"matched":    prior != nil,
	})

	if prior != nil && !links.HasAttribution() {
		entry, err := l.quarantine.Create(ctx, d)
		if err != nil {
			return nil, err
		}
		log.WithField("wrongDonationId", entry.ID).Warn("Linker.HandleOutPayment.quarantined")
		return newDonationResult(d, false), nil
	}

	log.Info("Linker.HandleOutPayment.recorded")
	return newDonationResult(d, false), nil
}

func (l *Linker) findPrior(ctx context.Context, description string) (*donation.Donation, error) {
	ref := l.resolver.Resolve(description)
	if ref.Kind != resolver.KindRawToken {
		return nil, nil
	}
	prior, err := l.donations.FindEarliestByTID(ctx, ref.Code)
	if err != nil {
		return nil, fmt.Errorf("find prior donation: %w", err)
	}
	return prior, nil
}

// resolveInbound follows the single reference in the description. A bare
// token is tried as a project code, then an account code, then an e-mail.
func (l *Linker) resolveInbound(ctx context.Context, description string) (donation.Links, error) {
	var links donation.Links
	ref := l.resolver.Resolve(description)

	switch ref.Kind {
	case resolver.KindReferralCode:
		account, err := l.lookup.FindAccountByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find referrer %q: %w", ref.Code, err)
		}
		if account != nil {
			links.ReferrerAccountID = validID(account.ID)
		}

	case resolver.KindChallengeCode:
		challenge, err := l.lookup.FindChallengeByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find challenge %q: %w", ref.Code, err)
		}
		if challenge != nil {
			links.ChallengeID = validID(challenge.ID)
			if projectID, ok := challenge.SingleProject(); ok {
				links.ProjectID = validID(projectID)
			}
		}

	case resolver.KindProjectCode:
		project, err := l.lookup.FindProjectByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find project %q: %w", ref.Code, err)
		}
		if project != nil {
			links.ProjectID = validID(project.ID)
		}

	case resolver.KindAccountCode:
		account, err := l.lookup.FindAccountByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find account %q: %w", ref.Code, err)
		}
		if account != nil {
			links.CreatorAccountID = validID(account.ID)
		}

	case resolver.KindRawToken:
		project, err := l.lookup.FindProjectByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find project %q: %w", ref.Code, err)
		}
		if project != nil {
			links.ProjectID = validID(project.ID)
			return links, nil
		}

		account, err := l.lookup.FindAccountByCode(ctx, ref.Code)
		if err != nil {
			return links, fmt.Errorf("find account %q: %w", ref.Code, err)
		}
		if account == nil && resolver.LooksLikeEmail(ref.Code) {
			account, err = l.lookup.FindAccountByEmail(ctx, ref.Code)
			if err != nil {
				return links, fmt.Errorf("find account by email: %w", err)
			}
		}
		if account != nil {
			links.CreatorAccountID = validID(account.ID)
		}
	}

	return links, nil
}

func newDonationCreate(tx Transaction, direction donation.Direction, links donation.Links) *donation.DonationCreate {
	return &donation.DonationCreate{
		TID:          tx.TID,
		Direction:    direction,
		Value:        tx.Amount,
		Description:  tx.Description,
		Counterparty: tx.Counterparty,
		Links:        links,
		BookedAt:     tx.BookedAt,
	}
}
