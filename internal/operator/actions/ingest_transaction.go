package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage"
)

// IngestTransaction records one bank transaction as a donation. Result is
// set once Perform succeeds.
type IngestTransaction struct {
	Transaction reconcile.Transaction
	// ActingEmail identifies the account submitting on behalf of the
	// transport. Unknown e-mails are ignored.
	ActingEmail string
	Resolver    *resolver.Resolver
	Logger      logrus.FieldLogger

	Result *reconcile.DonationResult
	IAction
}

func (a *IngestTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	var actor uuid.NullUUID
	if a.ActingEmail != "" {
		account, err := writer.Entity.FindAccountByEmail(ctx, a.ActingEmail)
		if err != nil {
			return fmt.Errorf("find acting account: %w", err)
		}
		if account != nil {
			actor = uuid.NullUUID{UUID: account.ID, Valid: true}
		} else {
			a.Logger.WithField("actingEmail", a.ActingEmail).Warn("IngestTransaction.Perform.unknown acting account")
		}
	}

	linker := reconcile.NewLinker(writer.Donation, writer.WrongDonation, writer.Entity, a.Resolver, a.Logger)
	result, err := linker.Ingest(ctx, a.Transaction, actor)
	if err != nil {
		return err
	}

	a.Result = result
	return nil
}
