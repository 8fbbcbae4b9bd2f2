package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/service"
	"github.com/carson-networks/donation-recon/internal/storage"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

func newTestRest(t *testing.T) (*Rest, *wrongdonation.MockIWrongDonationReader, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	entries := wrongdonation.NewMockIWrongDonationReader(t)
	svc := service.NewService(service.NewMockActionProcessor(t), entries, service.Options{
		Resolver: resolver.New(resolver.DefaultPrefixes()),
	}, logger)
	return &Rest{Logger: logger, Service: svc, Storage: &storage.Storage{}}, entries, hook
}

func TestRouter_ServesHumaOperations(t *testing.T) {
	rest, entries, hook := newTestRest(t)
	entries.EXPECT().List(mock.Anything, mock.Anything).Return([]*wrongdonation.WrongDonation{}, nil)

	w := httptest.NewRecorder()
	rest.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/wrong-donations", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body, "wrongDonations")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Handler.list-wrong-donations.Complete", last.Message)
}

func TestRouter_PublishesOpenAPI(t *testing.T) {
	rest, _, _ := newTestRest(t)

	w := httptest.NewRecorder()
	rest.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var spec struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&spec))
	assert.Contains(t, spec.Paths, "/v1/transactions")
	assert.Contains(t, spec.Paths, "/v1/reconciliation/sweep")
	assert.Contains(t, spec.Paths, "/v1/wrong-donations")
}
