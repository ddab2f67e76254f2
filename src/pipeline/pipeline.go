package pipeline

import (
	"context"
	"fmt"
	"os"

	"unterm-agent/src/broker"
	"unterm-agent/src/ingest"
	"unterm-agent/src/logger"
	"unterm-agent/src/scrub"
	"unterm-agent/src/store"
)

// StartAgents runs the ingest and scrub agents as goroutines on the given
// broker and store. Used when both stages live in one process; the
// standalone agent binaries run them individually instead.
// Logging is silent so agent chatter cannot corrupt a TUI; errors still
// reach stderr.
func StartAgents(ctx context.Context, msgBroker broker.Broker, st store.Store) {
	log := logger.NewSilentLogger()

	ingestAgent := ingest.NewAgent(msgBroker, log)
	go func() {
		if err := ingestAgent.Run(ctx); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "[Pipeline] Ingest agent error: %v\n", err)
		}
	}()

	scrubAgent := scrub.NewAgent(msgBroker, st, log)
	go func() {
		if err := scrubAgent.Run(ctx); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "[Pipeline] Scrub agent error: %v\n", err)
		}
	}()
}
