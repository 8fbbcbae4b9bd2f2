package reconciliation

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/service"
)

const defaultPageSize = 20

// WrongDonation is the API response model for a quarantine entry.
type WrongDonation struct {
	ID            string `json:"id" doc:"Quarantine entry UUID"`
	DonationID    string `json:"donationId" doc:"Quarantined donation UUID"`
	FlaggedReason string `json:"flaggedReason,omitempty" doc:"Why the entry needs an operator"`
	FlaggedAt     string `json:"flaggedAt,omitempty" doc:"RFC3339 time the entry was flagged"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 quarantine time"`
}

// ListWrongDonationsCursor represents a pagination cursor in responses.
type ListWrongDonationsCursor struct {
	Position int `json:"position" doc:"Offset of the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListWrongDonationsInput is the Huma input for listing quarantine entries.
// Without a limit the service default applies.
type ListWrongDonationsInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset from a previous nextCursor"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size"`
}

// ListWrongDonationsResponseBody is the response body for listing quarantine entries.
type ListWrongDonationsResponseBody struct {
	WrongDonations []WrongDonation           `json:"wrongDonations" doc:"Page of quarantine entries, oldest first"`
	NextCursor     *ListWrongDonationsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListWrongDonationsOutput is the Huma output for listing quarantine entries.
type ListWrongDonationsOutput struct {
	Body ListWrongDonationsResponseBody
}

// wrongDonationLister is the interface for listing quarantine entries.
type wrongDonationLister interface {
	ListWrongDonations(ctx context.Context, cursor *service.WrongDonationCursor) ([]service.WrongDonation, *service.WrongDonationCursor, error)
}

// ListWrongDonationsHandler handles GET /v1/wrong-donations.
type ListWrongDonationsHandler struct {
	ReconciliationService wrongDonationLister
}

func NewListWrongDonationsHandler(svc wrongDonationLister) *ListWrongDonationsHandler {
	return &ListWrongDonationsHandler{ReconciliationService: svc}
}

// Register registers the list endpoint with the Huma API.
func (h *ListWrongDonationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-wrong-donations",
		Method:      http.MethodGet,
		Path:        "/v1/wrong-donations",
		Summary:     "List quarantined donations",
		Description: "Returns a paginated list of quarantine entries, including those flagged for an operator.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

// parseListWrongDonationsInput returns nil when neither parameter is set so
// the service default applies.
func parseListWrongDonationsInput(input *ListWrongDonationsInput) *service.WrongDonationCursor {
	if input.Position == 0 && input.Limit == 0 {
		return nil
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	return &service.WrongDonationCursor{Position: input.Position, Limit: limit}
}

func (h *ListWrongDonationsHandler) handle(ctx context.Context, input *ListWrongDonationsInput) (*ListWrongDonationsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listWrongDonationsMs")
	}
	entries, nextCursor, err := h.ReconciliationService.ListWrongDonations(ctx, parseListWrongDonationsInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list wrong donations", err)
	}

	if logData != nil {
		logData.AddData("wrongDonationCount", len(entries))
	}

	resp := ListWrongDonationsResponseBody{
		WrongDonations: make([]WrongDonation, len(entries)),
	}
	for i, entry := range entries {
		resp.WrongDonations[i] = WrongDonation{
			ID:            entry.ID.String(),
			DonationID:    entry.DonationID.String(),
			FlaggedReason: entry.FlaggedReason,
			CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.FlaggedAt != nil {
			resp.WrongDonations[i].FlaggedAt = entry.FlaggedAt.Format(time.RFC3339)
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &ListWrongDonationsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListWrongDonationsOutput{Body: resp}, nil
}
