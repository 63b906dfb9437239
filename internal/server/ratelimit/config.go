package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Defaults for rate limiting. Report generation is CPU-cheap, so the
// limit is generous; it exists to keep a single client from hogging
// the process.
const (
	defaultLimit           = 60
	defaultWindow          = time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int
	Window          time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig returns the built-in rate limit settings.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           defaultLimit,
		Window:          defaultWindow,
		CleanupInterval: defaultCleanupInterval,
	}
}

// LoadConfig builds a Config from environment variables, falling back
// to defaults for unset or unparseable values:
//
//	RATE_LIMIT_ENABLED  "false" disables limiting entirely
//	RATE_LIMIT_REQUESTS requests allowed per window
//	RATE_LIMIT_WINDOW   window as a Go duration, e.g. "1m"
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Limit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if window, err := time.ParseDuration(v); err == nil && window > 0 {
			cfg.Window = window
		}
	}
	return cfg
}
