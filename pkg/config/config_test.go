package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "reengage", cfg.DatabaseName)
	require.Equal(t, time.Minute, cfg.SchedulerInterval)
	require.Equal(t, "completion-events", cfg.PubSubTopic)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCHEDULER_INTERVAL", "5m")
	t.Setenv("DB_NAME", "lms")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.SchedulerInterval)
	require.Equal(t, "lms", cfg.DatabaseName)
}

func TestInvalidIntervalFallsBack(t *testing.T) {
	t.Setenv("SCHEDULER_INTERVAL", "not-a-duration")

	cfg := Load()

	require.Equal(t, time.Minute, cfg.SchedulerInterval)
}
