// Package main provides the standalone ingest agent binary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"unterm-agent/src/broker"
	"unterm-agent/src/config"
	"unterm-agent/src/ingest"
	"unterm-agent/src/logger"
)

func main() {
	cfg := config.LoadFromEnv()

	// Verify we're in distributed mode
	if len(cfg.Brokers) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: UNTERM_BROKERS environment variable is required for ingest agent")
		fmt.Fprintln(os.Stderr, "Example: export UNTERM_BROKERS=localhost:19092")
		os.Exit(1)
	}

	log := logger.NewConsoleLogger()

	log.Info("Starting unterm Ingest Agent")
	log.Info("Brokers: %v", cfg.Brokers)

	brk, err := broker.NewRedpandaBroker(cfg.Brokers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create broker: %v\n", err)
		os.Exit(1)
	}
	defer brk.Close()

	agent := ingest.NewAgent(brk, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received, stopping agent...")
		cancel()
	}()

	log.Info("Ingest agent started, waiting for requests...")
	if err := agent.Run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Agent error: %v\n", err)
		os.Exit(1)
	}

	log.Info("Ingest agent stopped")
}
