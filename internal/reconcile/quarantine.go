package reconcile

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

// Quarantine holds donations whose attribution needs another attempt. An
// entry may only be retired while it and its donation reference each other.
type Quarantine struct {
	donations donation.IDonationTable
	entries   wrongdonation.IWrongDonationTable
}

func NewQuarantine(donations donation.IDonationTable, entries wrongdonation.IWrongDonationTable) *Quarantine {
	return &Quarantine{donations: donations, entries: entries}
}

// Create quarantines d. The entry is inserted first and the back-reference
// set second; both writes belong to the caller's transaction.
func (q *Quarantine) Create(ctx context.Context, d *donation.Donation) (*wrongdonation.WrongDonation, error) {
	entry, err := q.entries.Insert(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("insert wrong donation: %w", err)
	}

	backReference := validID(entry.ID)
	if err := q.donations.SetWrongDonation(ctx, d.ID, backReference); err != nil {
		return nil, fmt.Errorf("set back-reference: %w", err)
	}
	d.WrongDonationID = backReference

	return entry, nil
}

func (q *Quarantine) ListAll(ctx context.Context) ([]*wrongdonation.WrongDonation, error) {
	return q.entries.List(ctx, nil)
}

// IsBidirectional reports whether entry and d point at each other.
func IsBidirectional(entry *wrongdonation.WrongDonation, d *donation.Donation) bool {
	if entry == nil || d == nil {
		return false
	}
	return entry.DonationID == d.ID &&
		d.WrongDonationID.Valid &&
		d.WrongDonationID.UUID == entry.ID
}

// DeleteIfConsistent re-reads the donation under lock and deletes the entry
// only when the link is bidirectional, clearing the back-reference with it.
func (q *Quarantine) DeleteIfConsistent(ctx context.Context, entry *wrongdonation.WrongDonation) (bool, error) {
	d, err := q.donations.FindByIDForUpdate(ctx, entry.DonationID)
	if err != nil {
		return false, fmt.Errorf("reload donation: %w", err)
	}
	if !IsBidirectional(entry, d) {
		return false, nil
	}

	if err := q.donations.SetWrongDonation(ctx, d.ID, uuid.NullUUID{}); err != nil {
		return false, fmt.Errorf("clear back-reference: %w", err)
	}
	if err := q.entries.Delete(ctx, entry.ID); err != nil {
		return false, fmt.Errorf("delete wrong donation: %w", err)
	}
	return true, nil
}
