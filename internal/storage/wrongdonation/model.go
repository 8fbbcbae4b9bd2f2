package wrongdonation

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// WrongDonation is a quarantine entry for a donation whose attribution could
// not be established when it was ingested.
type WrongDonation struct {
	ID         uuid.UUID
	DonationID uuid.UUID
	// FlaggedReason is set when a sweep found a match but could not clear
	// the entry; such entries need an operator.
	FlaggedReason string
	FlaggedAt     *time.Time
	CreatedAt     time.Time
}

// WrongDonationFilter specifies pagination for listing entries.
type WrongDonationFilter struct {
	Limit  int
	Offset int
}

// IWrongDonationReader is the read side of the quarantine, used outside of
// any transaction.
//
//go:generate mockery --name IWrongDonationReader --inpackage --with-expecter
type IWrongDonationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WrongDonation, error)
	List(ctx context.Context, filter *WrongDonationFilter) ([]*WrongDonation, error)
}

// IWrongDonationTable defines the interface for quarantine storage operations.
type IWrongDonationTable interface {
	IWrongDonationReader
	// FindByIDForUpdate locks the entry, returning (nil, nil) when it is
	// gone or already locked by another sweep worker.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*WrongDonation, error)
	Insert(ctx context.Context, donationID uuid.UUID) (*WrongDonation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Flag(ctx context.Context, id uuid.UUID, reason string) error
}

type wrongDonationRow struct {
	ID            uuid.UUID    `db:"id"`
	DonationID    uuid.UUID    `db:"donation_id"`
	FlaggedReason string       `db:"flagged_reason"`
	FlaggedAt     sql.NullTime `db:"flagged_at"`
	CreatedAt     time.Time    `db:"created_at"`
}

var wrongDonationColumns = []any{"id", "donation_id", "flagged_reason", "flagged_at", "created_at"}

func rowToWrongDonation(row wrongDonationRow) *WrongDonation {
	entry := &WrongDonation{
		ID:            row.ID,
		DonationID:    row.DonationID,
		FlaggedReason: row.FlaggedReason,
		CreatedAt:     row.CreatedAt,
	}
	if row.FlaggedAt.Valid {
		flaggedAt := row.FlaggedAt.Time
		entry.FlaggedAt = &flaggedAt
	}
	return entry
}
