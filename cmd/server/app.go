package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/medgen-api/internal/config"
	"github.com/phrazzld/medgen-api/internal/gateway"
	"github.com/phrazzld/medgen-api/internal/generation"
	"github.com/phrazzld/medgen-api/internal/metrics"
	"github.com/phrazzld/medgen-api/internal/prompt"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	gateway *gateway.Gateway

	// model labels the loaded candidate; empty when no backend was acquired.
	model string
}

// newApplication creates a new application instance with all dependencies initialized.
//
// Backend acquisition happens once, here. If every candidate fails, or the
// init timeout expires, the application still starts and every generation
// request is answered with a backend-unavailable error until restart. Errors
// that indicate a configuration bug, such as an unknown backend kind, abort
// startup instead.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	factories map[string]generation.Factory,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	prompts, err := prompt.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	provider, err := generation.NewProvider(
		logger.With("component", "model_provider"),
		toCandidates(cfg.LLM.ResolvedCandidates()),
		factories,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create model provider: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LLM.InitTimeoutSeconds)*time.Second)
	defer cancel()

	var backend generation.Backend
	loaded, err := provider.Acquire(initCtx)
	switch {
	case err == nil:
		backend = loaded.Backend
		app.model = loaded.Candidate.Label()
		metrics.BackendLoaded.WithLabelValues(app.model).Set(1)
		logger.Info("LLM backend loaded", "candidate", app.model)
	case errors.Is(err, generation.ErrBackendUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		metrics.BackendLoaded.WithLabelValues("none").Set(0)
		logger.Error("No LLM backend available, generation requests will fail until restart",
			"error", err)
	default:
		return nil, fmt.Errorf("failed to acquire LLM backend: %w", err)
	}

	app.gateway, err = gateway.New(backend, prompts, logger.With("component", "gateway"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
