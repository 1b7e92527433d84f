// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment
// variables. Logging is configured separately, before config loads, so that
// load failures are reported through the structured logger.
type Config struct {
	// ItemsPerPage is the marketplace page size.
	ItemsPerPage int
	// PrefsPath is the SQLite file holding the preference snapshot. Empty
	// selects the in-memory snapshot store (nothing survives the process).
	PrefsPath string
}

// Load reads configuration from environment variables. All defaults are
// usable as-is; nothing is required.
func Load() (*Config, error) {
	itemsPerPage, err := getEnvInt("OKEY_ITEMS_PER_PAGE", 9)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg := &Config{
		ItemsPerPage: itemsPerPage,
		PrefsPath:    getEnv("OKEY_PREFS_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks value bounds.
func (c *Config) validate() error {
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("OKEY_ITEMS_PER_PAGE must be >= 1, got %d", c.ItemsPerPage)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}
