package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/operator/actions"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
)

// IngestService records transactions delivered by the bank transport.
type IngestService struct {
	processor ActionProcessor
	resolver  *resolver.Resolver
	logger    logrus.FieldLogger
}

func NewIngestService(processor ActionProcessor, res *resolver.Resolver, logger logrus.FieldLogger) *IngestService {
	return &IngestService{processor: processor, resolver: res, logger: logger}
}

// Ingest classifies and records tx. Redelivering the same transaction is
// safe and returns the donation recorded the first time.
func (s *IngestService) Ingest(ctx context.Context, tx reconcile.Transaction, actingEmail string) (*reconcile.DonationResult, error) {
	action := &actions.IngestTransaction{
		Transaction: tx,
		ActingEmail: actingEmail,
		Resolver:    s.resolver,
		Logger:      s.logger.WithField("tid", tx.TID),
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}
