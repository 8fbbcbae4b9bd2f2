// Package reconcile attributes bank transactions to donations and retries
// attribution for donations held in quarantine.
package reconcile

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
)

// Transaction is one bank notification as delivered by the transport.
type Transaction struct {
	TID          string
	Amount       decimal.Decimal
	Description  string
	BookedAt     time.Time
	Counterparty donation.Counterparty
}

// DonationResult describes the donation a transaction was recorded as.
type DonationResult struct {
	DonationID      uuid.UUID
	Direction       donation.Direction
	Links           donation.Links
	WrongDonationID uuid.NullUUID
	// Duplicate is set when the transaction had already been recorded and
	// nothing was written.
	Duplicate bool
}

// Classify returns DirectionIn for strictly positive amounts and
// DirectionOut otherwise.
func Classify(amount decimal.Decimal) donation.Direction {
	if amount.IsPositive() {
		return donation.DirectionIn
	}
	return donation.DirectionOut
}

func newDonationResult(d *donation.Donation, duplicate bool) *DonationResult {
	return &DonationResult{
		DonationID:      d.ID,
		Direction:       d.Direction,
		Links:           d.Links,
		WrongDonationID: d.WrongDonationID,
		Duplicate:       duplicate,
	}
}

func validID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}
