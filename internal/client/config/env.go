package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig maps CARMARKET_* environment variables. It is prefilled from the
// current Config so unset variables keep earlier values.
type EnvConfig struct {
	StoreDriver      string        `env:"CARMARKET_STORE_DRIVER"`
	StoreDSN         string        `env:"CARMARKET_STORE_DSN"`
	OperationTimeout time.Duration `env:"CARMARKET_OPERATION_TIMEOUT"`
	LogLevel         string        `env:"CARMARKET_LOG_LEVEL"`
}

// parseEnv overlays cfg with environment variables. It panics when a
// variable cannot be parsed (e.g. a malformed duration).
func parseEnv(cfg *Config) {
	ec := EnvConfig{
		StoreDriver:      cfg.StoreDriver,
		StoreDSN:         cfg.StoreDSN,
		OperationTimeout: cfg.OperationTimeout,
		LogLevel:         cfg.LogLevel,
	}

	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	cfg.StoreDriver = ec.StoreDriver
	cfg.StoreDSN = ec.StoreDSN
	cfg.OperationTimeout = ec.OperationTimeout
	cfg.LogLevel = ec.LogLevel
}
