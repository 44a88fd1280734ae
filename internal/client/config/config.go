package config

import (
	"os"
	"time"
)

// Storage drivers understood by storage.Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds runtime settings for the carmarket CLI.
//
// Fields:
//   - StoreDriver: key-value backend, one of sqlite, postgres, redis.
//   - StoreDSN: file path (sqlite), connection string (postgres) or redis URL.
//   - OperationTimeout: deadline applied to every store round-trip of a command.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StoreDriver      string
	StoreDSN         string
	OperationTimeout time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.StoreDSN = "carmarket.db"
	c.OperationTimeout = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
