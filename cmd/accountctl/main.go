// Package main is the admin CLI. It shares the application graph with the
// server through internal/bootstrap and runs without telemetry export.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/cli"
	"github.com/jsamuelsen11/account-action-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/account-action-service/internal/bootstrap"
	"github.com/jsamuelsen11/account-action-service/internal/platform/config"
	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
	"github.com/jsamuelsen11/account-action-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := cli.Deps{
		Open:    open,
		Migrate: migrate,
		Out:     os.Stdout,
	}
	if err := cli.Run(ctx, deps, os.Args, version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func open(_ context.Context, profile string) (*cli.Session, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue[*telemetry.Metrics](injector, nil)

	resources := bootstrap.Register(injector)

	svc, err := do.Invoke[ports.AccountActionService](injector)
	if err != nil {
		_ = resources.Close()
		return nil, fmt.Errorf("resolving service: %w", err)
	}

	return &cli.Session{Service: svc, Logger: logger, Close: resources.Close}, nil
}

func migrate(ctx context.Context, profile string) error {
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		return err
	}
	logger.Info("schema applied", slog.String("dsn", cfg.Database.DSN))
	return nil
}
