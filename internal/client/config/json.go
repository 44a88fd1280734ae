package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carmarket/internal/flagx"
	"github.com/dmitrijs2005/carmarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty or
// missing fields leave the corresponding Config value untouched.
type JsonConfig struct {
	StoreDriver      string         `json:"store_driver"`
	StoreDSN         string         `json:"store_dsn"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c/-config in
// args. It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.StoreDSN != "" {
		cfg.StoreDSN = jc.StoreDSN
	}
	if jc.OperationTimeout.Duration > 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
