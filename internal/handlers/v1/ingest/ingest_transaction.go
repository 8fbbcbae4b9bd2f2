package ingest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/storage/donation"
)

// CounterpartyBody describes the other side of the bank transaction.
type CounterpartyBody struct {
	Name     string `json:"name,omitempty" doc:"Account holder name"`
	IBAN     string `json:"iban,omitempty" doc:"Account IBAN"`
	BankCode string `json:"bankCode,omitempty" doc:"Bank code or BIC"`
}

// IngestTransactionBody is the request body for one bank notification.
type IngestTransactionBody struct {
	TID          string            `json:"tid" required:"true" minLength:"1" doc:"Bank ledger transaction id"`
	Amount       string            `json:"amount" required:"true" doc:"Signed decimal amount, positive for credits"`
	Description  string            `json:"description,omitempty" doc:"Free-text remittance information"`
	BookedAt     string            `json:"bookedAt,omitempty" format:"date-time" doc:"RFC3339 booking time, defaults to now"`
	Counterparty *CounterpartyBody `json:"counterparty,omitempty" doc:"Counterparty details"`
}

// IngestTransactionInput is the Huma input for ingesting a transaction.
type IngestTransactionInput struct {
	ActingAccount string `header:"X-Acting-Account" doc:"E-mail of the account submitting the transaction"`
	Body          IngestTransactionBody
}

// IngestTransactionOutput is the Huma output for ingesting a transaction.
type IngestTransactionOutput struct {
	Status int
	Body   Donation
}

// transactionIngester is the interface for recording transactions.
type transactionIngester interface {
	Ingest(ctx context.Context, tx reconcile.Transaction, actingEmail string) (*reconcile.DonationResult, error)
}

// IngestTransactionHandler handles POST /v1/transactions.
type IngestTransactionHandler struct {
	IngestService transactionIngester
}

func NewIngestTransactionHandler(svc transactionIngester) *IngestTransactionHandler {
	return &IngestTransactionHandler{IngestService: svc}
}

// Register registers the ingest endpoint with the Huma API.
func (h *IngestTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "ingest-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Ingest bank transaction",
		Description:   "Records a bank transaction as a donation. Redelivery of the same transaction returns the existing donation.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseIngestTransactionInput converts the API input into a transaction.
func parseIngestTransactionInput(input *IngestTransactionInput) (reconcile.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Body.Amount))
	if err != nil {
		return reconcile.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	bookedAt := time.Now().UTC()
	if input.Body.BookedAt != "" {
		bookedAt, err = time.Parse(time.RFC3339, input.Body.BookedAt)
		if err != nil {
			return reconcile.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid bookedAt", err)
		}
	}

	tx := reconcile.Transaction{
		TID:         strings.TrimSpace(input.Body.TID),
		Amount:      amount,
		Description: input.Body.Description,
		BookedAt:    bookedAt,
	}
	if tx.TID == "" {
		return reconcile.Transaction{}, huma.NewError(http.StatusBadRequest, "tid must not be blank")
	}
	if c := input.Body.Counterparty; c != nil {
		tx.Counterparty = donation.Counterparty{Name: c.Name, IBAN: c.IBAN, BankCode: c.BankCode}
	}
	return tx, nil
}

func (h *IngestTransactionHandler) handle(ctx context.Context, input *IngestTransactionInput) (*IngestTransactionOutput, error) {
	tx, err := parseIngestTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("tid", tx.TID)
		stopTimer = logData.AddTiming("ingestMs")
	}
	result, err := h.IngestService.Ingest(ctx, tx, strings.TrimSpace(input.ActingAccount))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to ingest transaction", err)
	}

	if logData != nil {
		logData.AddData("donationId", result.DonationID.String())
		logData.AddData("duplicate", result.Duplicate)
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	return &IngestTransactionOutput{Status: status, Body: newDonation(result)}, nil
}
