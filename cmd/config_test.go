package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"printflow/cmd"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("should use defaults when nothing is set", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookupFrom(nil))

		require.NoError(t, err)
		assert.Equal(t, cmd.DefaultConfig(), cfg)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, 1000, cfg.OrderIDOffset)
		assert.Equal(t, 72*time.Hour, cfg.EstimatedLeadTime)
		assert.Equal(t, "@every 1m", cfg.SummarySchedule)
		assert.True(t, cfg.SeedDemoOrders)
	})

	t.Run("should read every variable", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookupFrom(map[string]string{
			cmd.EnvLogLevel:          "debug",
			cmd.EnvOrderIDOffset:     "5000",
			cmd.EnvEstimatedLeadTime: "48h",
			cmd.EnvSummarySchedule:   "*/5 * * * *",
			cmd.EnvSeedDemoOrders:    "false",
		}))

		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, 5000, cfg.OrderIDOffset)
		assert.Equal(t, 48*time.Hour, cfg.EstimatedLeadTime)
		assert.Equal(t, "*/5 * * * *", cfg.SummarySchedule)
		assert.False(t, cfg.SeedDemoOrders)
	})

	t.Run("should treat blank values as unset", func(t *testing.T) {
		cfg, err := cmd.ConfigFromEnv(lookupFrom(map[string]string{cmd.EnvSummarySchedule: "  "}))

		require.NoError(t, err)
		assert.Equal(t, "@every 1m", cfg.SummarySchedule)
	})

	t.Run("should report every unparsable variable", func(t *testing.T) {
		_, err := cmd.ConfigFromEnv(lookupFrom(map[string]string{
			cmd.EnvLogLevel:          "chatty",
			cmd.EnvOrderIDOffset:     "ten",
			cmd.EnvEstimatedLeadTime: "soon",
			cmd.EnvSeedDemoOrders:    "maybe",
		}))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, key := range []string{cmd.EnvLogLevel, cmd.EnvOrderIDOffset, cmd.EnvEstimatedLeadTime, cmd.EnvSeedDemoOrders} {
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		_, err := cmd.ConfigFromEnv(lookupFrom(map[string]string{
			cmd.EnvOrderIDOffset:     "-1",
			cmd.EnvEstimatedLeadTime: "0s",
		}))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "estimated lead time")
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.SummarySchedule = ""

	require.ErrorIs(t, cfg.Validate(), errs.ErrValueIsRequired)
}

func TestLoadConfig(t *testing.T) {
	t.Run("should load variables from an env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("ORDER_ID_OFFSET=2000\nSEED_DEMO_ORDERS=false\n"), 0o600))
		t.Setenv(cmd.EnvOrderIDOffset, "")
		t.Setenv(cmd.EnvSeedDemoOrders, "")
		require.NoError(t, os.Unsetenv(cmd.EnvOrderIDOffset))
		require.NoError(t, os.Unsetenv(cmd.EnvSeedDemoOrders))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 2000, cfg.OrderIDOffset)
		assert.False(t, cfg.SeedDemoOrders)
	})

	t.Run("should not override variables already set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("ESTIMATED_LEAD_TIME=24h\n"), 0o600))
		t.Setenv(cmd.EnvEstimatedLeadTime, "96h")

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 96*time.Hour, cfg.EstimatedLeadTime)
	})

	t.Run("should ignore a missing env file", func(t *testing.T) {
		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
	})
}
