// Package pipeline wires the cleaning stages together, in-process for local
// mode and over the broker and store for distributed mode.
package pipeline

import "unterm-agent/src/config"

// Mode selects how a cleaning run executes.
type Mode int

const (
	// LocalMode runs everything in-process: read, clean, write, one line
	// at a time in input order. No external services.
	LocalMode Mode = iota

	// DistributedMode submits runs to Redpanda; the ingest and scrub
	// agents process them and results land in Postgres.
	DistributedMode
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	if m == DistributedMode {
		return "distributed"
	}
	return "local"
}

// DetectMode picks the execution mode from configuration: broker addresses
// present means distributed.
func DetectMode(cfg *config.Config) Mode {
	if cfg.Distributed() {
		return DistributedMode
	}
	return LocalMode
}
