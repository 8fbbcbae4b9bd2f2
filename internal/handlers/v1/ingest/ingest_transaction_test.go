package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/storage/donation"
)

type mockTransactionIngester struct {
	mock.Mock
}

func (m *mockTransactionIngester) Ingest(ctx context.Context, tx reconcile.Transaction, actingEmail string) (*reconcile.DonationResult, error) {
	args := m.Called(ctx, tx, actingEmail)
	result, _ := args.Get(0).(*reconcile.DonationResult)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc transactionIngester) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewIngestTransactionHandler(svc).Register(api)
	return api
}

func validID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

// -- parseIngestTransactionInput unit tests --

func TestParseIngestTransactionInput_ValidInput(t *testing.T) {
	input := &IngestTransactionInput{
		Body: IngestTransactionBody{
			TID:         " T-100 ",
			Amount:      "-12.50",
			Description: "T-99",
			BookedAt:    "2025-01-15T10:30:00Z",
			Counterparty: &CounterpartyBody{
				Name: "Jane Doe",
				IBAN: "DE89370400440532013000",
			},
		},
	}

	tx, err := parseIngestTransactionInput(input)

	assert.NoError(t, err)
	assert.Equal(t, "T-100", tx.TID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-12.50")))
	assert.Equal(t, "T-99", tx.Description)
	assert.True(t, tx.BookedAt.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, donation.Counterparty{Name: "Jane Doe", IBAN: "DE89370400440532013000"}, tx.Counterparty)
}

func TestParseIngestTransactionInput_DefaultsBookedAt(t *testing.T) {
	before := time.Now().UTC()

	tx, err := parseIngestTransactionInput(&IngestTransactionInput{
		Body: IngestTransactionBody{TID: "T-1", Amount: "5"},
	})

	assert.NoError(t, err)
	assert.False(t, tx.BookedAt.Before(before))
}

func TestParseIngestTransactionInput_Errors(t *testing.T) {
	cases := map[string]IngestTransactionBody{
		"bad amount": {TID: "T-1", Amount: "ten"},
		"blank tid":  {TID: "   ", Amount: "10"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseIngestTransactionInput(&IngestTransactionInput{Body: body})
			assert.Error(t, err)
		})
	}
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_IngestTransaction_Created(t *testing.T) {
	donationID, referrerID := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionIngester)
	mockSvc.On("Ingest", mock.Anything, mock.MatchedBy(func(tx reconcile.Transaction) bool {
		return tx.TID == "T-100" &&
			tx.Amount.Equal(decimal.RequireFromString("25.00")) &&
			tx.Description == "REFER ACC001"
	}), "ops@example.org").Return(&reconcile.DonationResult{
		DonationID: donationID,
		Direction:  donation.DirectionIn,
		Links:      donation.Links{ReferrerAccountID: validID(referrerID)},
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions",
		"X-Acting-Account: ops@example.org",
		IngestTransactionBody{
			TID:         "T-100",
			Amount:      "25.00",
			Description: "REFER ACC001",
		})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Donation
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, donationID.String(), body.DonationID)
	assert.Equal(t, "in", body.Direction)
	assert.Equal(t, referrerID.String(), body.ReferrerAccountID)
	assert.Empty(t, body.ProjectID)
	assert.Empty(t, body.WrongDonationID)
	assert.False(t, body.Duplicate)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_IngestTransaction_DuplicateReturnsOK(t *testing.T) {
	donationID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionIngester)
	mockSvc.On("Ingest", mock.Anything, mock.Anything, "").Return(&reconcile.DonationResult{
		DonationID: donationID,
		Direction:  donation.DirectionIn,
		Duplicate:  true,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", IngestTransactionBody{
		TID:    "T-100",
		Amount: "25.00",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Donation
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Duplicate)
	assert.Equal(t, donationID.String(), body.DonationID)
}

func TestHTTP_IngestTransaction_QuarantinedOutbound(t *testing.T) {
	entryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionIngester)
	mockSvc.On("Ingest", mock.Anything, mock.Anything, "").Return(&reconcile.DonationResult{
		DonationID:      uuid.Must(uuid.NewV4()),
		Direction:       donation.DirectionOut,
		WrongDonationID: validID(entryID),
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", IngestTransactionBody{
		TID:         "OUT-1",
		Amount:      "-25.00",
		Description: "T-100",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Donation
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "out", body.Direction)
	assert.Equal(t, entryID.String(), body.WrongDonationID)
}

func TestHTTP_IngestTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionIngester)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", map[string]any{
		"description": "REFER ACC001",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Ingest")
}

func TestHTTP_IngestTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionIngester)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", IngestTransactionBody{
		TID:    "T-1",
		Amount: "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Ingest")
}

func TestHTTP_IngestTransaction_InvalidBookedAt(t *testing.T) {
	mockSvc := new(mockTransactionIngester)

	// Huma's format:"date-time" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", IngestTransactionBody{
		TID:      "T-1",
		Amount:   "10",
		BookedAt: "yesterday",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Ingest")
}

func TestHTTP_IngestTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionIngester)
	mockSvc.On("Ingest", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", IngestTransactionBody{
		TID:    "T-1",
		Amount: "10",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
