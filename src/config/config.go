// Package config provides environment-based configuration for unterm.
package config

import (
	"os"
	"strings"
)

// Config holds the application configuration. Everything is optional: with
// no environment set, unterm runs fully local with no external services.
type Config struct {
	// Brokers lists Redpanda/Kafka seed addresses for distributed mode.
	// Empty means local mode.
	Brokers []string

	// PostgresDSN is the connection string for the run store.
	// Required only when Brokers is set.
	PostgresDSN string
}

// LoadFromEnv reads configuration from environment variables.
// UNTERM_BROKERS is a comma-separated list of broker addresses;
// UNTERM_POSTGRES_DSN is a lib/pq connection string.
func LoadFromEnv() *Config {
	cfg := &Config{
		PostgresDSN: os.Getenv("UNTERM_POSTGRES_DSN"),
	}

	if raw := os.Getenv("UNTERM_BROKERS"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				cfg.Brokers = append(cfg.Brokers, addr)
			}
		}
	}

	return cfg
}

// Distributed reports whether broker addresses are configured.
func (c *Config) Distributed() bool {
	return len(c.Brokers) > 0
}
