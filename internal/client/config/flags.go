package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/carmarket/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   storage driver
//	-s string   storage DSN
//	-t int      per-operation timeout in seconds
//	-l string   log level
//
// args is filtered through flagx.FilterArgs first so that -c/-config and
// unrelated flags do not break parsing. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "storage driver: sqlite, postgres or redis")
	fs.StringVar(&cfg.StoreDSN, "s", cfg.StoreDSN, "storage DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "operation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OperationTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
