package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/entity"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

type Writer struct {
	tx            bob.Tx
	Donation      *donation.Writer
	WrongDonation *wrongdonation.Writer
	// Entity lookups are side-effect free and run outside the transaction.
	Entity *entity.Reader
}

func NewWriter(tx bob.Tx, lookupExec bob.Executor) Writer {
	return Writer{
		tx:            tx,
		Donation:      donation.NewWriter(tx),
		WrongDonation: wrongdonation.NewWriter(tx),
		Entity:        entity.NewReader(lookupExec),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
