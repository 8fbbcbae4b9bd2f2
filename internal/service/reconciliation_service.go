package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/operator/actions"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

const defaultWrongDonationLimit = 20

// ReconciliationService runs sweeps over the quarantine and exposes it for
// inspection.
type ReconciliationService struct {
	processor   ActionProcessor
	entries     wrongdonation.IWrongDonationReader
	resolver    *resolver.Resolver
	options     reconcile.SweepOptions
	concurrency int
	logger      logrus.FieldLogger
}

func NewReconciliationService(
	processor ActionProcessor,
	entries wrongdonation.IWrongDonationReader,
	options Options,
	logger logrus.FieldLogger,
) *ReconciliationService {
	concurrency := options.SweepConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &ReconciliationService{
		processor:   processor,
		entries:     entries,
		resolver:    options.Resolver,
		options:     options.Sweep,
		concurrency: concurrency,
		logger:      logger,
	}
}

// RunSweep retries every quarantine entry once. Each entry is its own
// transaction; a failing entry is counted and left for the next sweep.
// Cancelling ctx stops new entries from starting.
func (s *ReconciliationService) RunSweep(ctx context.Context) (*SweepResult, error) {
	logData := logging.NewLogData(s.logger)
	endTimer := logData.AddTiming("duration")

	endListTimer := logData.AddTiming("listDuration")
	entries, err := s.entries.List(ctx, nil)
	endListTimer()
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Total: len(entries)}
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			done := logData.AddToExistingTiming("entryDuration")
			outcome, err := s.resolveEntry(ctx, entry)
			done()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				return nil
			}
			result.record(outcome)
			return nil
		})
	}
	_ = g.Wait()
	endTimer()

	logData.AddData("total", result.Total)
	logData.AddData("resolved", result.Resolved)
	logData.AddData("untouched", result.Untouched)
	logData.AddData("flagged", result.Flagged)
	logData.AddData("skipped", result.Skipped)
	logData.AddData("failed", result.Failed)
	logData.Log().Info("ReconciliationService.RunSweep.complete")

	return result, ctx.Err()
}

func (s *ReconciliationService) resolveEntry(ctx context.Context, entry *wrongdonation.WrongDonation) (reconcile.Outcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"wrongDonationId": entry.ID,
		"donationId":      entry.DonationID,
	})
	action := &actions.ResolveWrongDonation{
		EntryID:  entry.ID,
		Options:  s.options,
		Resolver: s.resolver,
		Logger:   log,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		log.WithError(err).Error("ReconciliationService.resolveEntry.failed")
		return "", err
	}
	return action.Result.Outcome, nil
}

func (r *SweepResult) record(outcome reconcile.Outcome) {
	switch outcome {
	case reconcile.OutcomeResolved:
		r.Resolved++
	case reconcile.OutcomeFlagged:
		r.Flagged++
	case reconcile.OutcomeSkipped:
		r.Skipped++
	default:
		r.Untouched++
	}
}

// ListWrongDonations returns a page of quarantine entries using cursor
// pagination, oldest first.
func (s *ReconciliationService) ListWrongDonations(ctx context.Context, cursor *WrongDonationCursor) ([]WrongDonation, *WrongDonationCursor, error) {
	limit := defaultWrongDonationLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.entries.List(ctx, &wrongdonation.WrongDonationFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *WrongDonationCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &WrongDonationCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]WrongDonation, len(rows))
	for i, row := range rows {
		converted[i] = WrongDonation{
			ID:            row.ID,
			DonationID:    row.DonationID,
			FlaggedReason: row.FlaggedReason,
			FlaggedAt:     row.FlaggedAt,
			CreatedAt:     row.CreatedAt,
		}
	}

	return converted, nextCursor, nil
}
