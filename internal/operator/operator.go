package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/operator/actions"
	"github.com/carson-networks/donation-recon/internal/storage"
)

// Operator is the worker that processes items from the queue. Each item runs
// inside its own database transaction.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  logrus.FieldLogger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger logrus.FieldLogger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) (err error) {
	// The caller may have given up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action %T panicked: %v", item.action, r)
		}
		if err != nil {
			if rollbackErr := writer.Rollback(); rollbackErr != nil {
				o.logger.WithError(rollbackErr).WithField("action", fmt.Sprintf("%T", item.action)).
					Error("Operator.processItem.rollback failed")
			}
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		return err
	}

	if err = writer.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
