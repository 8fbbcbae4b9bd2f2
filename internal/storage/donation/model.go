package donation

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Direction separates credits from debits. Together with the bank tid it
// identifies one delivered transaction.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Links are the optional references a donation carries to catalogue entities.
type Links struct {
	ProjectID            uuid.NullUUID
	ChallengeID          uuid.NullUUID
	ReferrerAccountID    uuid.NullUUID
	CreatorAccountID     uuid.NullUUID
	TransferredProjectID uuid.NullUUID
}

// HasAttribution reports whether any of project, challenge or referring
// account is set.
func (l Links) HasAttribution() bool {
	return l.ProjectID.Valid || l.ChallengeID.Valid || l.ReferrerAccountID.Valid
}

// Counterparty is the bank-side metadata of the other party.
type Counterparty struct {
	Name     string
	IBAN     string
	BankCode string
}

// Donation represents a donation record.
type Donation struct {
	ID           uuid.UUID
	TID          string
	Direction    Direction
	Value        decimal.Decimal
	Description  string
	Counterparty Counterparty
	Links        Links
	// WrongDonationID is the back-reference to the quarantine entry that
	// holds this donation.
	WrongDonationID uuid.NullUUID
	BookedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DonationCreate is the input for creating a new donation.
type DonationCreate struct {
	TID          string
	Direction    Direction
	Value        decimal.Decimal
	Description  string
	Counterparty Counterparty
	Links        Links
	BookedAt     time.Time // defaults to now if zero
}

// IDonationTable defines the interface for donation storage operations.
// Find methods return (nil, nil) when no row matches.
//
//go:generate mockery --name IDonationTable --inpackage --with-expecter
type IDonationTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Donation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Donation, error)
	FindByTID(ctx context.Context, tid string, direction Direction) (*Donation, error)
	// FindEarliestByTID returns the first donation recorded for a tid.
	FindEarliestByTID(ctx context.Context, tid string) (*Donation, error)
	// FindAttributedByTID returns the earliest donation other than excludeID
	// that shares the tid, has a positive value and a project.
	FindAttributedByTID(ctx context.Context, tid string, excludeID uuid.UUID) (*Donation, error)
	// Insert returns created=false with the existing row when a donation
	// with the same tid and direction already exists.
	Insert(ctx context.Context, create *DonationCreate) (donation *Donation, created bool, err error)
	UpdateLinks(ctx context.Context, id uuid.UUID, links Links) error
	SetWrongDonation(ctx context.Context, id uuid.UUID, wrongDonationID uuid.NullUUID) error
}

type donationRow struct {
	ID                   uuid.UUID       `db:"id"`
	TID                  string          `db:"tid"`
	Direction            string          `db:"direction"`
	Value                decimal.Decimal `db:"value"`
	Description          string          `db:"description"`
	CounterpartyName     string          `db:"counterparty_name"`
	CounterpartyIBAN     string          `db:"counterparty_iban"`
	CounterpartyBankCode string          `db:"counterparty_bank_code"`
	ProjectID            uuid.NullUUID   `db:"project_id"`
	ChallengeID          uuid.NullUUID   `db:"challenge_id"`
	ReferrerAccountID    uuid.NullUUID   `db:"referrer_account_id"`
	CreatorAccountID     uuid.NullUUID   `db:"creator_account_id"`
	TransferredProjectID uuid.NullUUID   `db:"transferred_project_id"`
	WrongDonationID      uuid.NullUUID   `db:"wrong_donation_id"`
	BookedAt             time.Time       `db:"booked_at"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

var donationColumns = []any{
	"id", "tid", "direction", "value", "description",
	"counterparty_name", "counterparty_iban", "counterparty_bank_code",
	"project_id", "challenge_id", "referrer_account_id", "creator_account_id",
	"transferred_project_id", "wrong_donation_id",
	"booked_at", "created_at", "updated_at",
}

func rowToDonation(row donationRow) *Donation {
	return &Donation{
		ID:          row.ID,
		TID:         row.TID,
		Direction:   Direction(row.Direction),
		Value:       row.Value,
		Description: row.Description,
		Counterparty: Counterparty{
			Name:     row.CounterpartyName,
			IBAN:     row.CounterpartyIBAN,
			BankCode: row.CounterpartyBankCode,
		},
		Links: Links{
			ProjectID:            row.ProjectID,
			ChallengeID:          row.ChallengeID,
			ReferrerAccountID:    row.ReferrerAccountID,
			CreatorAccountID:     row.CreatorAccountID,
			TransferredProjectID: row.TransferredProjectID,
		},
		WrongDonationID: row.WrongDonationID,
		BookedAt:        row.BookedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
