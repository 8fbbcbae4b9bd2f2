package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage"
)

// ResolveWrongDonation retries attribution for one quarantine entry. The
// link update and the entry deletion commit together or not at all.
type ResolveWrongDonation struct {
	EntryID  uuid.UUID
	Options  reconcile.SweepOptions
	Resolver *resolver.Resolver
	Logger   logrus.FieldLogger

	Result *reconcile.EntryResult
	IAction
}

func (a *ResolveWrongDonation) Perform(ctx context.Context, writer *storage.Writer) error {
	sweeper := reconcile.NewSweeper(writer.Donation, writer.WrongDonation, writer.Entity, a.Resolver, a.Options, a.Logger)
	result, err := sweeper.ResolveEntry(ctx, a.EntryID)
	if err != nil {
		return err
	}

	a.Result = result
	return nil
}
