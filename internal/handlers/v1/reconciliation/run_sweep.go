package reconciliation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/service"
)

// SweepResponseBody reports what one sweep did.
type SweepResponseBody struct {
	Total     int `json:"total" doc:"Quarantine entries considered"`
	Resolved  int `json:"resolved" doc:"Entries matched and cleared"`
	Untouched int `json:"untouched" doc:"Entries with no match at any tier"`
	Flagged   int `json:"flagged" doc:"Entries matched but kept for an operator"`
	Skipped   int `json:"skipped" doc:"Entries locked by another sweep or already gone"`
	Failed    int `json:"failed" doc:"Entries that failed and stay quarantined"`
}

// RunSweepOutput is the Huma output for a sweep.
type RunSweepOutput struct {
	Body SweepResponseBody
}

// sweepRunner is the interface for triggering a sweep.
type sweepRunner interface {
	RunSweep(ctx context.Context) (*service.SweepResult, error)
}

// RunSweepHandler handles POST /v1/reconciliation/sweep.
type RunSweepHandler struct {
	ReconciliationService sweepRunner
}

func NewRunSweepHandler(svc sweepRunner) *RunSweepHandler {
	return &RunSweepHandler{ReconciliationService: svc}
}

// Register registers the sweep endpoint with the Huma API.
func (h *RunSweepHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "run-sweep",
		Method:      http.MethodPost,
		Path:        "/v1/reconciliation/sweep",
		Summary:     "Run reconciliation sweep",
		Description: "Retries attribution for every quarantined donation and returns the counts.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

func (h *RunSweepHandler) handle(ctx context.Context, _ *struct{}) (*RunSweepOutput, error) {
	result, err := h.ReconciliationService.RunSweep(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "sweep failed", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("resolved", result.Resolved)
		logData.AddData("failed", result.Failed)
	}

	return &RunSweepOutput{Body: SweepResponseBody{
		Total:     result.Total,
		Resolved:  result.Resolved,
		Untouched: result.Untouched,
		Flagged:   result.Flagged,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	}}, nil
}
