package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "ledger.json", cfg.Data.LedgerFile)
	assert.Equal(t, "goals.json", cfg.Data.GoalsFile)
	assert.Equal(t, "categories.yaml", cfg.Data.CategoriesFile)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("FINLEDGER_DATA_LEDGER_FILE", "custom.json")
	t.Setenv("FINLEDGER_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.Data.LedgerFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfigRejectsBadLevel(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "verbose"
	cfg.Log.Format = "text"
	cfg.Data.LedgerFile = "ledger.json"

	assert.Error(t, validateConfig(&cfg))
}

func TestConfigureLoggingLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, "debug", logger.GetLevel().String())

	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}
