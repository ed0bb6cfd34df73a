// Package main implements the entry point for the medgen API server, which
// answers health questions, translates and summarizes medical text through an
// LLM backend chosen at startup.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/medgen-api/internal/version"
)

// main is the entry point for the medgen-api server.
// It initializes configuration and logging, acquires a generation backend,
// and serves HTTP until SIGINT or SIGTERM.
func main() {
	fmt.Println("Medgen API Server Starting...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run wires the application together and blocks until ctx is canceled or the
// server fails.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	logger.Info("Build information", "build", version.String())

	app, err := newApplication(ctx, cfg, logger, defaultFactories(cfg, logger))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("Application initialized", "model_loaded", app.gateway.BackendLoaded())
	return app.Run(ctx)
}
