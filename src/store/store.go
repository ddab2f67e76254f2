// Package store defines persistence for cleaning runs and their batches.
package store

import (
	"context"

	"unterm-agent/src/contracts"
)

// Store persists run status and cleaned batches. The distributed pipeline
// writes through it from the scrub agent and reads from it when exporting
// the output file.
type Store interface {
	// CreateRun records a new cleaning run in pending state.
	CreateRun(ctx context.Context, runID, inputPath, outputPath string) error

	// GetRunStatus returns the status of a run.
	GetRunStatus(ctx context.Context, runID string) (*contracts.RunStatus, error)

	// UpdateRunStatus updates status and counters for a run.
	UpdateRunStatus(ctx context.Context, status *contracts.RunStatus) error

	// SaveBatch persists one cleaned batch. Saving the same batch index
	// twice replaces the earlier copy (agents may reprocess on restart).
	SaveBatch(ctx context.Context, batch *contracts.CleanedBatch) error

	// GetBatches returns every cleaned batch of a run ordered by batch
	// index, so callers can reassemble the output in input order.
	GetBatches(ctx context.Context, runID string) ([]contracts.CleanedBatch, error)

	// Close closes the store connection.
	Close() error
}
