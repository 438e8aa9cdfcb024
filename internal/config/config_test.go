package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "colsense.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.SessionTTLMins)
	assert.Equal(t, 4, cfg.Classifier.Concurrency)
	assert.InDelta(t, 0.25, cfg.Classifier.Threshold, 0.001)
	assert.False(t, cfg.Ensemble.Enabled)
	assert.Equal(t, "override", cfg.Ensemble.Mode)
	assert.InDelta(t, 0.7, cfg.Ensemble.Threshold, 0.001)
	assert.Equal(t, 15, cfg.Ensemble.TimeoutSecs)
	assert.Equal(t, 3, cfg.Ensemble.MaxSamples)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.Model)
	assert.Equal(t, 100, cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, 100000, cfg.Limits.MaxRows)
	assert.Equal(t, 1000, cfg.Limits.MaxColumns)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/colsense
log:
  level: debug
  format: console
server:
  port: 9090
ensemble:
  mode: weighted
  threshold: 0.8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "weighted", cfg.Ensemble.Mode)
	assert.InDelta(t, 0.8, cfg.Ensemble.Threshold, 0.001)
	// Defaults still apply for unset values
	assert.Equal(t, 4, cfg.Classifier.Concurrency)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("COLSENSE_STORE_DRIVER", "postgres")
	t.Setenv("COLSENSE_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("COLSENSE_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

// validDefaults returns a Config with defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8000
	cfg.Classifier.Concurrency = 4
	cfg.Classifier.Threshold = 0.25
	cfg.Ensemble.Mode = "override"
	cfg.Ensemble.Threshold = 0.7
	cfg.Store.Driver = "sqlite"
	cfg.Limits.MaxFileSizeMB = 100
	cfg.Limits.MaxRows = 100000
	cfg.Limits.MaxColumns = 1000
	return cfg
}

func TestValidateServe_OK(t *testing.T) {
	assert.NoError(t, validDefaults().Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestValidateUnknownMode(t *testing.T) {
	err := validDefaults().Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateConcurrencyBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Classifier.Concurrency = 0
	err := cfg.Validate("classify")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "classifier.concurrency")

	cfg.Classifier.Concurrency = 65
	err = cfg.Validate("classify")
	assert.Error(t, err)

	cfg.Classifier.Concurrency = 64
	assert.NoError(t, cfg.Validate("classify"))
}

func TestValidateEnsembleMode(t *testing.T) {
	cfg := validDefaults()
	cfg.Ensemble.Mode = "majority"

	err := cfg.Validate("classify")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ensemble.mode")
}

func TestValidateEnsembleRequiresKey(t *testing.T) {
	cfg := validDefaults()
	cfg.Ensemble.Enabled = true

	err := cfg.Validate("classify")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "provider key")

	cfg.Groq.Key = "gsk_test"
	assert.NoError(t, cfg.Validate("classify"))
}

func TestValidatePostgresNeedsURL(t *testing.T) {
	cfg := validDefaults()
	cfg.Store.Driver = "postgres"

	err := cfg.Validate("classify")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store.database_url")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
