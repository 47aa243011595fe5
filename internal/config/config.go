// Package config provides environment configuration management.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds all environment configuration for the application. The
// transfer fee, transfer cap and account-number length bounds are
// explicit settings rather than process-wide constants.
type Config struct {
	TransactionFee         float64 `env:"TRANSACTION_FEE"            envDefault:"5.0"`
	MaxTransferAmount      float64 `env:"MAX_TRANSFER_AMOUNT"        envDefault:"50000.0"`
	AccountNumberMinLength int     `env:"ACCOUNT_NUMBER_MIN_LENGTH"  envDefault:"8"`
	AccountNumberMaxLength int     `env:"ACCOUNT_NUMBER_MAX_LENGTH"  envDefault:"12"`
	LogLevel               string  `env:"LOG_LEVEL"                  envDefault:"info"`
	LogFormat              string  `env:"LOG_FORMAT"                 envDefault:"text"`
}

// LoadConfig parses environment variables into Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
