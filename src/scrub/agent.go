// Package scrub provides the cleaning agent for the distributed pipeline.
// It consumes raw line batches, runs the sanitizer over every line, and
// persists the cleaned batches.
package scrub

import (
	"context"
	"encoding/json"
	"fmt"

	"unterm-agent/src/broker"
	"unterm-agent/src/contracts"
	"unterm-agent/src/logger"
	"unterm-agent/src/sanitize"
	"unterm-agent/src/store"
)

// Agent consumes raw line batches and publishes cleaned batches.
type Agent struct {
	broker broker.Broker
	store  store.Store
	logger logger.Logger
}

// NewAgent creates a new scrub agent.
func NewAgent(brk broker.Broker, st store.Store, log logger.Logger) *Agent {
	return &Agent{
		broker: brk,
		store:  st,
		logger: log,
	}
}

// Run starts the agent's main loop. It subscribes to unterm.lines.raw and
// processes incoming batches until the context is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("[ScrubAgent] Starting...")

	msgChan, err := a.broker.Subscribe(ctx, contracts.TopicLinesRaw, "unterm-scrub")
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", contracts.TopicLinesRaw, err)
	}

	a.logger.Info("[ScrubAgent] Listening for line batches on '%s' topic...", contracts.TopicLinesRaw)

	for {
		select {
		case msg, ok := <-msgChan:
			if !ok {
				a.logger.Info("[ScrubAgent] Message channel closed, shutting down")
				return nil
			}

			if err := a.processBatch(ctx, msg); err != nil {
				a.logger.Error("[ScrubAgent] Error processing batch: %v", err)
			}

		case <-ctx.Done():
			a.logger.Info("[ScrubAgent] Context cancelled, shutting down")
			return ctx.Err()
		}
	}
}

// processBatch cleans one batch, persists it, and publishes the result.
func (a *Agent) processBatch(ctx context.Context, msg broker.Message) error {
	var batch contracts.LineBatch
	if err := json.Unmarshal(msg.Value, &batch); err != nil {
		return fmt.Errorf("failed to unmarshal batch: %w", err)
	}

	a.logger.Debug("[ScrubAgent] Cleaning batch %d/%d of run %s",
		batch.BatchIndex+1, batch.TotalBatches, batch.RunID)

	cleaned := CleanBatch(batch)

	if err := a.store.SaveBatch(ctx, &cleaned); err != nil {
		return fmt.Errorf("failed to save batch %d: %w", cleaned.BatchIndex, err)
	}

	if err := a.updateRunStatus(ctx, cleaned); err != nil {
		return err
	}

	data, err := json.Marshal(cleaned)
	if err != nil {
		return fmt.Errorf("failed to marshal cleaned batch: %w", err)
	}
	if err := a.broker.Publish(ctx, contracts.TopicLinesClean, cleaned.RunID, data); err != nil {
		return fmt.Errorf("failed to publish cleaned batch: %w", err)
	}

	a.logger.Debug("[ScrubAgent] Batch %d/%d done: %d escapes, %d glyphs",
		cleaned.BatchIndex+1, cleaned.TotalBatches,
		cleaned.EscapesStripped, cleaned.GlyphsReplaced)

	return nil
}

// updateRunStatus folds one processed batch into the run's counters and
// marks the run completed once every batch has been processed.
func (a *Agent) updateRunStatus(ctx context.Context, batch contracts.CleanedBatch) error {
	status, err := a.store.GetRunStatus(ctx, batch.RunID)
	if err != nil {
		return fmt.Errorf("failed to load run status: %w", err)
	}

	status.Status = contracts.StatusProcessing
	status.BatchesTotal = batch.TotalBatches
	status.BatchesProcessed++
	status.LinesTotal += len(batch.Lines)
	status.EscapesStripped += batch.EscapesStripped
	status.GlyphsReplaced += batch.GlyphsReplaced
	if status.BatchesProcessed >= status.BatchesTotal {
		status.Status = contracts.StatusCompleted
	}

	if err := a.store.UpdateRunStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	return nil
}

// CleanBatch runs the sanitizer over every line of a batch. Stateless; the
// output preserves line order and count.
func CleanBatch(batch contracts.LineBatch) contracts.CleanedBatch {
	cleaned := contracts.CleanedBatch{
		RunID:        batch.RunID,
		OutputPath:   batch.OutputPath,
		BatchIndex:   batch.BatchIndex,
		TotalBatches: batch.TotalBatches,
		LineStart:    batch.LineStart,
		Lines:        make([]string, len(batch.Lines)),
	}

	for i, line := range batch.Lines {
		clean, stats := sanitize.CleanWithStats(line)
		cleaned.Lines[i] = clean
		cleaned.EscapesStripped += stats.EscapesStripped
		cleaned.GlyphsReplaced += stats.Total()
	}
	return cleaned
}
