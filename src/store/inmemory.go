package store

import (
	"context"
	"sort"
	"sync"

	"unterm-agent/src/contracts"
)

// InMemoryStore is a thread-safe in-memory implementation of Store.
// Used for local mode and tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	runs    map[string]contracts.RunStatus
	batches map[string]map[int]contracts.CleanedBatch // run_id -> batch_index -> batch
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		runs:    make(map[string]contracts.RunStatus),
		batches: make(map[string]map[int]contracts.CleanedBatch),
	}
}

// CreateRun records a new cleaning run in pending state.
func (s *InMemoryStore) CreateRun(ctx context.Context, runID, inputPath, outputPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[runID]; exists {
		return nil
	}
	s.runs[runID] = contracts.RunStatus{
		RunID:      runID,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Status:     contracts.StatusPending,
	}
	return nil
}

// GetRunStatus returns the status of a run.
func (s *InMemoryStore) GetRunStatus(ctx context.Context, runID string) (*contracts.RunStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.runs[runID]
	if !ok {
		return nil, ErrNotFound{RunID: runID}
	}
	return &status, nil
}

// UpdateRunStatus updates status and counters for a run.
func (s *InMemoryStore) UpdateRunStatus(ctx context.Context, status *contracts.RunStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[status.RunID]; !ok {
		return ErrNotFound{RunID: status.RunID}
	}
	s.runs[status.RunID] = *status
	return nil
}

// SaveBatch persists one cleaned batch, replacing any earlier copy of the
// same batch index.
func (s *InMemoryStore) SaveBatch(ctx context.Context, batch *contracts.CleanedBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byIndex, ok := s.batches[batch.RunID]
	if !ok {
		byIndex = make(map[int]contracts.CleanedBatch)
		s.batches[batch.RunID] = byIndex
	}
	byIndex[batch.BatchIndex] = *batch
	return nil
}

// GetBatches returns a run's cleaned batches ordered by batch index.
func (s *InMemoryStore) GetBatches(ctx context.Context, runID string) ([]contracts.CleanedBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byIndex, ok := s.batches[runID]
	if !ok {
		return nil, ErrNotFound{RunID: runID}
	}

	batches := make([]contracts.CleanedBatch, 0, len(byIndex))
	for _, b := range byIndex {
		batches = append(batches, b)
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].BatchIndex < batches[j].BatchIndex
	})
	return batches, nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error {
	return nil
}
