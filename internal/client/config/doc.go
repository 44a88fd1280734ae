// Package config loads runtime configuration for the carmarket CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables CARMARKET_* (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   storage driver: sqlite, postgres or redis
//	-s string   storage DSN (file path, postgres URL or redis URL)
//	-t int      per-operation timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "carmarket.db",
//	  "operation_timeout": "3s",
//	  "log_level": "info"
//	}
//
// operation_timeout accepts a duration string or integer nanoseconds
// (timex.Duration).
package config
