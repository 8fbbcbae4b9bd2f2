package ingest

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/donation-recon/internal/reconcile"
)

// Donation is the API response model for a recorded transaction. Links that
// could not be established are omitted.
type Donation struct {
	DonationID           string `json:"donationId" doc:"Donation UUID"`
	Direction            string `json:"direction" enum:"in,out" doc:"in for credits, out for debits"`
	ProjectID            string `json:"projectId,omitempty" doc:"Linked project UUID"`
	ChallengeID          string `json:"challengeId,omitempty" doc:"Linked challenge UUID"`
	ReferrerAccountID    string `json:"referrerAccountId,omitempty" doc:"Referring account UUID"`
	CreatorAccountID     string `json:"creatorAccountId,omitempty" doc:"Creating account UUID"`
	TransferredProjectID string `json:"transferredProjectId,omitempty" doc:"Project the donation was transferred to"`
	WrongDonationID      string `json:"wrongDonationId,omitempty" doc:"Quarantine entry UUID when attribution failed"`
	Duplicate            bool   `json:"duplicate" doc:"True when the transaction had already been recorded"`
}

func newDonation(result *reconcile.DonationResult) Donation {
	return Donation{
		DonationID:           result.DonationID.String(),
		Direction:            string(result.Direction),
		ProjectID:            optionalID(result.Links.ProjectID),
		ChallengeID:          optionalID(result.Links.ChallengeID),
		ReferrerAccountID:    optionalID(result.Links.ReferrerAccountID),
		CreatorAccountID:     optionalID(result.Links.CreatorAccountID),
		TransferredProjectID: optionalID(result.Links.TransferredProjectID),
		WrongDonationID:      optionalID(result.WrongDonationID),
		Duplicate:            result.Duplicate,
	}
}

func optionalID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
