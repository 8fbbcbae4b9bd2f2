package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/operator/actions"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

// ActionProcessor runs an action inside its own transaction and waits for
// it to finish.
//
//go:generate mockery --name ActionProcessor --inpackage --with-expecter
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ingest         *IngestService
	Reconciliation *ReconciliationService
}

type Options struct {
	Resolver         *resolver.Resolver
	Sweep            reconcile.SweepOptions
	SweepConcurrency int
}

// NewService wires the services onto the operator and the quarantine reader.
func NewService(
	processor ActionProcessor,
	entries wrongdonation.IWrongDonationReader,
	options Options,
	logger logrus.FieldLogger,
) *Service {
	return &Service{
		Ingest:         NewIngestService(processor, options.Resolver, logger),
		Reconciliation: NewReconciliationService(processor, entries, options, logger),
	}
}
