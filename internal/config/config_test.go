package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"admin-dashboard/internal/logging"

	"github.com/stretchr/testify/require"
)

func clearClientEnv(t *testing.T) {
	for _, key := range []string{"DASHBOARD_API_URL", "DASHBOARD_TIMEOUT", "DASHBOARD_SETTINGS", "DASHBOARD_LOG_LEVEL", "DASHBOARD_LOG_FORMAT", "DASHBOARD_LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func setServerEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dashboard")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("PORT", "")
	t.Setenv("STATS_TTL", "")
	t.Setenv("RESET_SCHEMA", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
}

func TestLoadClientDefaults(t *testing.T) {
	clearClientEnv(t)
	cfg, err := LoadClient()
	require.NoError(t, err)
	require.Equal(t, DefaultAPIURL, cfg.APIURL)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.NotEmpty(t, cfg.SettingsPath)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
	require.Equal(t, logging.FormatText, cfg.LogFormat)
	require.Empty(t, cfg.LogFile)
}

func TestLoadClientOverrides(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("DASHBOARD_API_URL", "https://api.example.com/api")
	t.Setenv("DASHBOARD_TIMEOUT", "5s")
	t.Setenv("DASHBOARD_SETTINGS", "/tmp/s.yaml")
	t.Setenv("DASHBOARD_LOG_LEVEL", "debug")
	t.Setenv("DASHBOARD_LOG_FORMAT", "json")

	cfg, err := LoadClient()
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com/api", cfg.APIURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "/tmp/s.yaml", cfg.SettingsPath)
	require.Equal(t, logging.LevelDebug, cfg.LogLevel)
	require.Equal(t, logging.FormatJSON, cfg.LogFormat)
}

func TestLoadClientErrors(t *testing.T) {
	clearClientEnv(t)
	t.Setenv("DASHBOARD_TIMEOUT", "soon")
	_, err := LoadClient()
	require.Error(t, err)

	t.Setenv("DASHBOARD_TIMEOUT", "-1s")
	_, err = LoadClient()
	require.Error(t, err)

	t.Setenv("DASHBOARD_TIMEOUT", "")
	t.Setenv("DASHBOARD_API_URL", "not a url")
	_, err = LoadClient()
	require.Error(t, err)
}

func TestLoadServer(t *testing.T) {
	setServerEnv(t)
	cfg, err := LoadServer()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.RedisDB)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, ":5000", cfg.Addr())
	require.Equal(t, time.Minute, cfg.StatsTTL)
	require.False(t, cfg.ResetSchema)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)

	t.Setenv("RESET_SCHEMA", "true")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STATS_TTL", "30s")
	cfg, err = LoadServer()
	require.NoError(t, err)
	require.True(t, cfg.ResetSchema)
	require.Equal(t, logging.FormatJSON, cfg.LogFormat)
	require.Equal(t, 30*time.Second, cfg.StatsTTL)
}

func TestLoadServerErrors(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD"} {
		t.Run(key, func(t *testing.T) {
			setServerEnv(t)
			t.Setenv(key, "")
			_, err := LoadServer()
			require.ErrorContains(t, err, key)
		})
	}

	t.Run("bad numbers", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("REDIS_DB", "x")
		_, err := LoadServer()
		require.Error(t, err)

		t.Setenv("REDIS_DB", "0")
		t.Setenv("WORKER_COUNT", "0")
		_, err = LoadServer()
		require.Error(t, err)

		t.Setenv("WORKER_COUNT", "2")
		t.Setenv("PORT", "http")
		_, err = LoadServer()
		require.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DASHBOARD_DOTENV_PROBE=loaded\n"), 0o600))
	t.Setenv("DASHBOARD_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("DASHBOARD_DOTENV_PROBE"))
	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "loaded", os.Getenv("DASHBOARD_DOTENV_PROBE"))
}
