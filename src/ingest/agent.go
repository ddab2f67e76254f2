package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"unterm-agent/src/broker"
	"unterm-agent/src/contracts"
	"unterm-agent/src/logger"
)

// Agent consumes clean requests and publishes raw line batches.
type Agent struct {
	broker broker.Broker
	logger logger.Logger
}

// NewAgent creates a new ingest agent.
func NewAgent(brk broker.Broker, log logger.Logger) *Agent {
	return &Agent{
		broker: brk,
		logger: log,
	}
}

// Run starts the agent's main loop. It subscribes to unterm.requests and
// processes incoming clean requests until the context is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("[IngestAgent] Starting...")

	msgChan, err := a.broker.Subscribe(ctx, contracts.TopicRequests, "unterm-ingest")
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", contracts.TopicRequests, err)
	}

	a.logger.Info("[IngestAgent] Listening for requests on '%s' topic...", contracts.TopicRequests)

	for {
		select {
		case msg, ok := <-msgChan:
			if !ok {
				a.logger.Info("[IngestAgent] Message channel closed, shutting down")
				return nil
			}

			if err := a.processRequest(ctx, msg); err != nil {
				a.logger.Error("[IngestAgent] Error processing request: %v", err)
			}

		case <-ctx.Done():
			a.logger.Info("[IngestAgent] Context cancelled, shutting down")
			return ctx.Err()
		}
	}
}

// processRequest reads and batches one input file, publishing every batch.
func (a *Agent) processRequest(ctx context.Context, msg broker.Message) error {
	var request contracts.CleanRequest
	if err := json.Unmarshal(msg.Value, &request); err != nil {
		return fmt.Errorf("failed to unmarshal request: %w", err)
	}

	a.logger.Info("[IngestAgent] Processing run %s", request.RunID)
	a.logger.Info("[IngestAgent] Input file: %s", request.InputPath)

	lines, err := ReadAllLines(request.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", request.InputPath, err)
	}

	batches := BatchLines(lines, request)
	a.logger.Info("[IngestAgent] Split %d lines into %d batches", len(lines), len(batches))

	for _, batch := range batches {
		data, err := json.Marshal(batch)
		if err != nil {
			return fmt.Errorf("failed to marshal batch %d: %w", batch.BatchIndex, err)
		}

		// Keyed by run ID so a run's batches stay on one partition.
		if err := a.broker.Publish(ctx, contracts.TopicLinesRaw, batch.RunID, data); err != nil {
			return fmt.Errorf("failed to publish batch %d: %w", batch.BatchIndex, err)
		}

		a.logger.Debug("[IngestAgent] Published %s", FormatBatchInfo(batch))
	}

	return nil
}
