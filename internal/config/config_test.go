package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pets-api/internal/platform/ids"
	"pets-api/internal/platform/logger"
)

var keys = []string{
	"PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"DB_DSN", "ID_STRATEGY", "SEED_FILE", "SEED_ON_START", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnv quita las keys del entorno; t.Setenv registra la restauración al terminar.
// Hace falta unset (no vacío) porque godotenv no pisa variables ya definidas.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, logger.Info, cfg.Log.Level)
	assert.Equal(t, logger.FormatText, cfg.Log.Format)
	assert.Equal(t, "pets-api", cfg.Log.App)
	assert.Equal(t, ids.StrategySequence, cfg.Store.IDStrategy)
	assert.True(t, cfg.Store.SeedOnStart)
	assert.Empty(t, cfg.Store.DSN)
	assert.False(t, cfg.RateLimit.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ID_STRATEGY", "uuid")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("SEED_FILE", "fixtures/dev.yaml")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, logger.Debug, cfg.Log.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
	assert.Equal(t, ids.StrategyUUID, cfg.Store.IDStrategy)
	assert.False(t, cfg.Store.SeedOnStart)
	assert.Equal(t, "fixtures/dev.yaml", cfg.Store.SeedFile)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

func TestFromEnv_InvalidValuesAreReportedTogether(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80 80")
	t.Setenv("HTTP_WRITE_TIMEOUT", "soon")
	t.Setenv("ID_STRATEGY", "snowflake")
	t.Setenv("SEED_ON_START", "maybe")

	_, err := FromEnv()
	require.Error(t, err)
	for _, key := range []string{"PORT", "HTTP_WRITE_TIMEOUT", "ID_STRATEGY", "SEED_ON_START"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestFromEnv_LogLevelAndFormatAreStrict(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT")

	t.Setenv("LOG_LEVEL", " WARNING ")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, logger.Warn, cfg.Log.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
}

func TestFromEnv_RateLimitNeedsBurst(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_RPS", "10")
	t.Setenv("RATE_LIMIT_BURST", "0")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_ReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=from-file\nPORT=7070\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Log.App)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
