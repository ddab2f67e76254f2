package store

import (
	"context"
	"testing"

	"unterm-agent/src/contracts"
)

func TestInMemoryRunLifecycle(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.CreateRun(ctx, "run-1", "in.txt", "in_output.txt"); err != nil {
		t.Fatalf("CreateRun() error: %v", err)
	}

	status, err := s.GetRunStatus(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRunStatus() error: %v", err)
	}
	if status.Status != contracts.StatusPending {
		t.Errorf("Status = %q, expected %q", status.Status, contracts.StatusPending)
	}
	if status.InputPath != "in.txt" || status.OutputPath != "in_output.txt" {
		t.Errorf("paths = %q, %q, expected in.txt, in_output.txt", status.InputPath, status.OutputPath)
	}

	status.Status = contracts.StatusCompleted
	status.LinesTotal = 10
	if err := s.UpdateRunStatus(ctx, status); err != nil {
		t.Fatalf("UpdateRunStatus() error: %v", err)
	}

	updated, err := s.GetRunStatus(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRunStatus() after update error: %v", err)
	}
	if updated.Status != contracts.StatusCompleted || updated.LinesTotal != 10 {
		t.Errorf("updated status = %+v, expected completed with 10 lines", updated)
	}
}

func TestInMemoryUnknownRun(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if _, err := s.GetRunStatus(ctx, "missing"); !IsNotFound(err) {
		t.Errorf("GetRunStatus(missing) error = %v, expected ErrNotFound", err)
	}
	if _, err := s.GetBatches(ctx, "missing"); !IsNotFound(err) {
		t.Errorf("GetBatches(missing) error = %v, expected ErrNotFound", err)
	}
	err := s.UpdateRunStatus(ctx, &contracts.RunStatus{RunID: "missing"})
	if !IsNotFound(err) {
		t.Errorf("UpdateRunStatus(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestInMemoryBatchesOrderedByIndex(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()
	ctx := context.Background()

	// Save out of order; retrieval must sort by batch index.
	for _, idx := range []int{2, 0, 1} {
		batch := &contracts.CleanedBatch{
			RunID:        "run-1",
			BatchIndex:   idx,
			TotalBatches: 3,
			Lines:        []string{string(rune('a' + idx))},
		}
		if err := s.SaveBatch(ctx, batch); err != nil {
			t.Fatalf("SaveBatch(%d) error: %v", idx, err)
		}
	}

	batches, err := s.GetBatches(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetBatches() error: %v", err)
	}
	if len(batches) != 3 {
		t.Fatalf("len(batches) = %d, expected 3", len(batches))
	}
	for i, b := range batches {
		if b.BatchIndex != i {
			t.Errorf("batches[%d].BatchIndex = %d, expected %d", i, b.BatchIndex, i)
		}
	}
}

func TestInMemorySaveBatchReplacesSameIndex(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()
	ctx := context.Background()

	first := &contracts.CleanedBatch{RunID: "run-1", BatchIndex: 0, Lines: []string{"old"}}
	second := &contracts.CleanedBatch{RunID: "run-1", BatchIndex: 0, Lines: []string{"new"}}

	if err := s.SaveBatch(ctx, first); err != nil {
		t.Fatalf("SaveBatch(first) error: %v", err)
	}
	if err := s.SaveBatch(ctx, second); err != nil {
		t.Fatalf("SaveBatch(second) error: %v", err)
	}

	batches, err := s.GetBatches(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetBatches() error: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("len(batches) = %d, expected 1", len(batches))
	}
	if batches[0].Lines[0] != "new" {
		t.Errorf("Lines[0] = %q, expected %q", batches[0].Lines[0], "new")
	}
}
