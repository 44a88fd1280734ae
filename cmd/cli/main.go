package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/carmarket/internal/buildinfo"
	"github.com/dmitrijs2005/carmarket/internal/client/cli"
	"github.com/dmitrijs2005/carmarket/internal/client/config"
	"github.com/dmitrijs2005/carmarket/internal/client/storage"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	s, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "driver", cfg.StoreDriver, logging.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn(ctx, "failed to close storage", logging.Err(err))
		}
	}()

	logger.Info(ctx, "storage opened", "driver", cfg.StoreDriver)

	app := cli.NewApp(cfg, s.KV, logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
