package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.TransactionFee)
	assert.Equal(t, 50000.0, cfg.MaxTransferAmount)
	assert.Equal(t, 8, cfg.AccountNumberMinLength)
	assert.Equal(t, 12, cfg.AccountNumberMaxLength)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TRANSACTION_FEE", "2.5")
	t.Setenv("MAX_TRANSFER_AMOUNT", "10000")
	t.Setenv("ACCOUNT_NUMBER_MIN_LENGTH", "6")
	t.Setenv("ACCOUNT_NUMBER_MAX_LENGTH", "10")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.TransactionFee)
	assert.Equal(t, 10000.0, cfg.MaxTransferAmount)
	assert.Equal(t, 6, cfg.AccountNumberMinLength)
	assert.Equal(t, 10, cfg.AccountNumberMaxLength)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("TRANSACTION_FEE", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}
