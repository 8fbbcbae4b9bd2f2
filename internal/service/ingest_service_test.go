package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/donation-recon/internal/operator/actions"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage/donation"
)

func newIngestTestService(t *testing.T) (*IngestService, *MockActionProcessor) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	processor := NewMockActionProcessor(t)
	return NewIngestService(processor, resolver.New(resolver.DefaultPrefixes()), logger), processor
}

func TestIngest_Success(t *testing.T) {
	svc, processor := newIngestTestService(t)

	tx := reconcile.Transaction{
		TID:         "T-100",
		Amount:      decimal.RequireFromString("25.00"),
		Description: "REFER ACC001",
	}
	expected := &reconcile.DonationResult{
		DonationID: uuid.Must(uuid.NewV4()),
		Direction:  donation.DirectionIn,
	}

	processor.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		ingest, ok := a.(*actions.IngestTransaction)
		return ok &&
			ingest.Transaction.TID == "T-100" &&
			ingest.Transaction.Amount.Equal(tx.Amount) &&
			ingest.ActingEmail == "ops@example.org" &&
			ingest.Resolver != nil
	})).Run(func(_ context.Context, a actions.IAction) {
		a.(*actions.IngestTransaction).Result = expected
	}).Return(nil)

	result, err := svc.Ingest(context.Background(), tx, "ops@example.org")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestIngest_ProcessorError(t *testing.T) {
	svc, processor := newIngestTestService(t)

	processor.EXPECT().Process(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	result, err := svc.Ingest(context.Background(), reconcile.Transaction{TID: "T-1"}, "")

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Nil(t, result)
}
