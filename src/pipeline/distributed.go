package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"unterm-agent/src/broker"
	"unterm-agent/src/config"
	"unterm-agent/src/contracts"
	"unterm-agent/src/output"
	"unterm-agent/src/report"
	"unterm-agent/src/sanitize"
	"unterm-agent/src/store"
)

// DistributedPipeline submits cleaning runs over the broker and reads
// results back from the store.
type DistributedPipeline struct {
	broker broker.Broker
	store  store.Store
}

// NewDistributedPipeline connects to Redpanda and Postgres.
func NewDistributedPipeline(cfg *config.Config) (*DistributedPipeline, error) {
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("distributed mode requires UNTERM_POSTGRES_DSN")
	}

	redpanda, err := broker.NewRedpandaBroker(cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redpanda broker: %w", err)
	}

	pg, err := store.NewPostgresStore(cfg.PostgresDSN)
	if err != nil {
		redpanda.Close()
		return nil, fmt.Errorf("failed to create Postgres store: %w", err)
	}

	return &DistributedPipeline{broker: redpanda, store: pg}, nil
}

// newDistributedPipelineWith injects broker and store; used in tests.
func newDistributedPipelineWith(brk broker.Broker, st store.Store) *DistributedPipeline {
	return &DistributedPipeline{broker: brk, store: st}
}

// Submit publishes a clean request for inputPath and records the run.
// The output path is fixed at submit time so every stage agrees on it.
func (p *DistributedPipeline) Submit(ctx context.Context, inputPath string) (string, error) {
	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	request := contracts.CleanRequest{
		RunID:      runID,
		InputPath:  inputPath,
		OutputPath: output.Path(inputPath),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	if err := p.store.CreateRun(ctx, runID, request.InputPath, request.OutputPath); err != nil {
		return "", fmt.Errorf("failed to create run record: %w", err)
	}
	if err := p.broker.Publish(ctx, contracts.TopicRequests, runID, data); err != nil {
		return "", fmt.Errorf("failed to publish request: %w", err)
	}

	return runID, nil
}

// Status returns the current status of a run.
func (p *DistributedPipeline) Status(ctx context.Context, runID string) (*contracts.RunStatus, error) {
	return p.store.GetRunStatus(ctx, runID)
}

// Export reassembles a completed run's cleaned batches in batch order and
// writes the output file. Exporting an incomplete run is an error rather
// than a gap in the output.
func (p *DistributedPipeline) Export(ctx context.Context, runID string) (report.Run, error) {
	status, err := p.store.GetRunStatus(ctx, runID)
	if err != nil {
		return report.Run{}, err
	}
	if status.Status != contracts.StatusCompleted {
		return report.Run{}, fmt.Errorf("run %s is %s, not completed", runID, status.Status)
	}

	batches, err := p.store.GetBatches(ctx, runID)
	if err != nil {
		return report.Run{}, err
	}
	if len(batches) > 0 && len(batches) != batches[0].TotalBatches {
		return report.Run{}, fmt.Errorf("run %s has %d of %d batches", runID, len(batches), batches[0].TotalBatches)
	}

	writer, err := output.NewWriter(status.OutputPath)
	if err != nil {
		return report.Run{}, err
	}
	for _, batch := range batches {
		for _, line := range batch.Lines {
			if err := writer.WriteLine(line); err != nil {
				writer.Close()
				return report.Run{}, err
			}
		}
	}
	if err := writer.Close(); err != nil {
		return report.Run{}, fmt.Errorf("failed to finalize output: %w", err)
	}

	stats := sanitize.Stats{EscapesStripped: status.EscapesStripped}
	run := report.New(status.InputPath, status.OutputPath, status.LinesTotal, stats)
	// Per-glyph tallies are not persisted; carry the aggregate count.
	run.GlyphsReplaced = status.GlyphsReplaced
	return run, nil
}

// Close shuts down the broker and store connections.
func (p *DistributedPipeline) Close() error {
	if err := p.broker.Close(); err != nil {
		p.store.Close()
		return err
	}
	return p.store.Close()
}
