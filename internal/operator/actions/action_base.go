package actions

import (
	"context"

	"github.com/carson-networks/donation-recon/internal/storage"
)

// IAction is one unit of work run by an operator inside a single
// transaction. Perform must only write through writer.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
