// Command admingate serves the password-gated admin area.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/admingate/app/admin"
	"github.com/dmitrymomot/admingate/core/config"
	"github.com/dmitrymomot/admingate/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "admingate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg admin.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, closer, err := logger.NewFromConfig(cfg.Log,
		logger.WithAttr(slog.String("service", cfg.AppName), slog.String("env", cfg.Env)),
	)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(log)

	app, err := admin.New(cfg, admin.WithLogger(log))
	if err != nil {
		log.Error("environment validation failed", logger.Component("admin"), logger.Error(err))
		return err
	}

	if err := app.Run(ctx); err != nil {
		log.Error("admin service stopped with error", logger.Component("admin"), logger.Error(err))
		return err
	}

	log.Info("admin service stopped", logger.Component("admin"))
	return nil
}
