// Package scheduler triggers reconciliation sweeps on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/service"
)

type sweepRunner interface {
	RunSweep(ctx context.Context) (*service.SweepResult, error)
}

type Scheduler struct {
	sweeper  sweepRunner
	interval time.Duration
	logger   logrus.FieldLogger
}

func New(sweeper sweepRunner, interval time.Duration, logger logrus.FieldLogger) *Scheduler {
	return &Scheduler{sweeper: sweeper, interval: interval, logger: logger}
}

// Run sweeps every interval until ctx is done. A tick that arrives while a
// sweep is still running is dropped. A zero interval returns immediately.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Scheduler.Run.disabled")
		return
	}

	s.logger.WithField("interval", s.interval.String()).Info("Scheduler.Run.start")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler.Run.stop")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	result, err := s.sweeper.RunSweep(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduler.tick.sweep failed")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"total":    result.Total,
		"resolved": result.Resolved,
		"failed":   result.Failed,
	}).Debug("Scheduler.tick.complete")
}
