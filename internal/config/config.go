// Package config loads chartnote settings from the environment.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all chartnote settings. Command-line flags override these.
type Config struct {
	// Notes
	VaultDir  string   `env:"CHARTNOTE_VAULT_DIR,default=."`
	Languages []string `env:"CHARTNOTE_LANGUAGES,default=d3"`

	// Templates
	TemplatesDir string `env:"CHARTNOTE_TEMPLATES_DIR"`

	// Output
	OutputFormat string `env:"CHARTNOTE_OUTPUT_FORMAT,default=json"`

	// Watcher
	WatchDebounce time.Duration `env:"CHARTNOTE_WATCH_DEBOUNCE,default=300ms"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.OutputFormat) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid output format %q (must be json or yaml)", c.OutputFormat)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("invalid watch debounce %s", c.WatchDebounce)
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one code block language is required")
	}
	return nil
}
