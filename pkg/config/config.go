// Package config loads the daemon configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Sink kinds selectable via BIDINPUT_SINK.
const (
	SinkMemory = "memory"
	SinkNATS   = "nats"
)

// Config is the inputd daemon configuration.
type Config struct {
	// BindAddr is the debug/metrics HTTP listen address.
	BindAddr string `env:"BIDINPUT_BIND" envDefault:"127.0.0.1:4499"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"BIDINPUT_LOG_LEVEL" envDefault:"info"`

	// Sink selects where synthesized events are delivered in addition to
	// the in-memory recorder: "memory" or "nats".
	Sink string `env:"BIDINPUT_SINK" envDefault:"memory"`

	// NATSURL is the NATS server URL when Sink is "nats".
	NATSURL string `env:"BIDINPUT_NATS_URL"`

	// EventDBPath, when set, persists every dispatched event to a SQLite
	// journal at this path.
	EventDBPath string `env:"BIDINPUT_EVENT_DB"`

	// TraceEnabled turns on the stdout OpenTelemetry exporter.
	TraceEnabled bool `env:"BIDINPUT_TRACE" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Sink {
	case SinkMemory:
	case SinkNATS:
		if c.NATSURL == "" {
			return fmt.Errorf("BIDINPUT_NATS_URL is required when BIDINPUT_SINK=nats")
		}
	default:
		return fmt.Errorf("unknown sink %q", c.Sink)
	}
	if c.BindAddr == "" {
		return fmt.Errorf("BIDINPUT_BIND must not be empty")
	}
	return nil
}
