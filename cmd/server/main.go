package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/blog-feed-client/internal/di"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/logging"
	"github.com/samber/do/v2"
)

func main() {
	// Text to stdout, errors also as JSON to stderr
	logger := logging.New(os.Stdout, os.Stderr, slog.LevelInfo)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Config decides the final log level, so logging is set up again once
	// it has loaded.
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stdout, os.Stderr, logging.LevelFor(cfg.AppEnv)))

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("Press Ctrl+C to stop")
	if err := di.Run(ctx, injector); err != nil {
		slog.Error("Application stopped", "error", err)
		os.Exit(1)
	}
}
