// Package config holds the platform policy knobs, loaded from the
// environment with built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains dispatch and agent-platform policy.
type Config struct {
	// PollIntervalSeconds is the poll cadence recommended to agents at
	// registration.
	PollIntervalSeconds int

	// MaxPullBatch caps the number of jobs assigned per pull.
	MaxPullBatch int

	// TokenTTL bounds agent token lifetime.
	TokenTTL time.Duration

	// ReaperInterval is how often the stuck-job reaper runs.
	ReaperInterval time.Duration

	// ReaperGrace is the slack past a job's own timeout before the reaper
	// fails it. Generous on purpose: a late agent result should win.
	ReaperGrace time.Duration

	// TokenSweepInterval is how often expired tokens are swept.
	TokenSweepInterval time.Duration
}

// Default returns the built-in policy defaults.
func Default() *Config {
	return &Config{
		PollIntervalSeconds: 15,
		MaxPullBatch:        5,
		TokenTTL:            30 * 24 * time.Hour,
		ReaperInterval:      1 * time.Minute,
		ReaperGrace:         2 * time.Minute,
		TokenSweepInterval:  1 * time.Hour,
	}
}

// LoadFromEnv returns the defaults overridden by environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	var err error
	if cfg.PollIntervalSeconds, err = intFromEnv("AGENT_POLL_INTERVAL_SECONDS", cfg.PollIntervalSeconds); err != nil {
		return nil, err
	}
	if cfg.MaxPullBatch, err = intFromEnv("JOB_MAX_PULL_BATCH", cfg.MaxPullBatch); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = durationFromEnv("AGENT_TOKEN_TTL", cfg.TokenTTL); err != nil {
		return nil, err
	}
	if cfg.ReaperInterval, err = durationFromEnv("JOB_REAPER_INTERVAL", cfg.ReaperInterval); err != nil {
		return nil, err
	}
	if cfg.ReaperGrace, err = durationFromEnv("JOB_REAPER_GRACE", cfg.ReaperGrace); err != nil {
		return nil, err
	}
	if cfg.TokenSweepInterval, err = durationFromEnv("TOKEN_SWEEP_INTERVAL", cfg.TokenSweepInterval); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q (want a positive integer)", key, v)
	}
	return n, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q (want a positive duration like 30s or 5m)", key, v)
	}
	return d, nil
}
