// Package main runs the interactive inventory console.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/platform/contextkeys"
	"github.com/abgdnv/inventory/internal/platform/logger"
	"github.com/abgdnv/inventory/internal/product/app"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		stop()
		os.Exit(1)
	}
}

// run loads the configuration, wires the store, service and console, and blocks until the
// user exits, the input stream ends or the process is interrupted.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.New(cfg.Log.Level, os.Stderr)
	slog.SetDefault(appLogger)
	appLogger.Debug("Configuration loaded", "config", cfg.String())

	ctx = contextkeys.WithSessionID(ctx, uuid.NewString())

	deps, err := app.SetupDependencies(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up application: %w", err)
	}
	c := app.SetupConsole(deps, cfg, os.Stdin, os.Stdout)

	// A read from a terminal cannot be interrupted, so the console runs on its own goroutine
	// and is abandoned when the process is signalled.
	consoleErr := make(chan error, 1)
	go func() {
		consoleErr <- c.Run(ctx)
	}()

	select {
	case err := <-consoleErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console stopped: %w", err)
		}
	case <-ctx.Done():
		appLogger.InfoContext(ctx, "Interrupted, shutting down")
	}
	return nil
}
