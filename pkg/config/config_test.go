package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("AGENT_POLL_INTERVAL_SECONDS", "30")
		t.Setenv("JOB_MAX_PULL_BATCH", "10")
		t.Setenv("AGENT_TOKEN_TTL", "24h")
		t.Setenv("JOB_REAPER_INTERVAL", "30s")
		t.Setenv("JOB_REAPER_GRACE", "5m")
		t.Setenv("TOKEN_SWEEP_INTERVAL", "2h")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.PollIntervalSeconds)
		assert.Equal(t, 10, cfg.MaxPullBatch)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 30*time.Second, cfg.ReaperInterval)
		assert.Equal(t, 5*time.Minute, cfg.ReaperGrace)
		assert.Equal(t, 2*time.Hour, cfg.TokenSweepInterval)
	})

	t.Run("rejects non-numeric int", func(t *testing.T) {
		t.Setenv("JOB_MAX_PULL_BATCH", "lots")
		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JOB_MAX_PULL_BATCH")
	})

	t.Run("rejects non-positive int", func(t *testing.T) {
		t.Setenv("AGENT_POLL_INTERVAL_SECONDS", "0")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Setenv("JOB_REAPER_GRACE", "soon")
		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JOB_REAPER_GRACE")
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		t.Setenv("AGENT_TOKEN_TTL", "-1h")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})
}
