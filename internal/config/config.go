package config

import (
	"errors"
	"fmt"
	"os"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dshills/crwrite/internal/store"
)

// Config holds the runtime settings for one crwrite invocation.
type Config struct {
	// Source is the producer string stamped into review documents, from
	// CRWRITE_SOURCE. Empty means the built-in default.
	Source string `env:"CRWRITE_SOURCE"`
	// LogLevel is the stderr logging verbosity from CRWRITE_LOG_LEVEL.
	LogLevel string `env:"CRWRITE_LOG_LEVEL" envDefault:"info"`
	// Redact enables secret scrubbing of comment text, from CRWRITE_REDACT.
	Redact bool `env:"CRWRITE_REDACT"`
}

// Load builds the effective config: .env file (if present) <- process env.
func Load() (Config, error) {
	// A .env in the working directory seeds variables that are not already
	// set; its absence is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Source == "" {
		cfg.Source = store.DefaultSource
	}
	return cfg, nil
}
