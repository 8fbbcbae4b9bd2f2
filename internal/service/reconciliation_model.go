package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// SweepResult counts what one sweep did with each quarantine entry.
type SweepResult struct {
	Total     int `json:"total"`
	Resolved  int `json:"resolved"`
	Untouched int `json:"untouched"`
	Flagged   int `json:"flagged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// WrongDonation is a quarantine entry in the service layer.
type WrongDonation struct {
	ID            uuid.UUID
	DonationID    uuid.UUID
	FlaggedReason string
	FlaggedAt     *time.Time
	CreatedAt     time.Time
}

// WrongDonationCursor identifies a position in a paginated result set.
type WrongDonationCursor struct {
	Position int
	Limit    int
}
