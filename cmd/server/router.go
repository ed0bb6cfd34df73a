package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/medgen-api/internal/api"
	apiMiddleware "github.com/phrazzld/medgen-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// timeoutGrace is how long chi's Timeout waits past the request deadline.
const timeoutGrace = 5 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewCORS(app.config.Server.CORSAllowedOrigins))
	r.Use(apiMiddleware.Metrics)

	generationHandler := api.NewGenerationHandler(app.gateway)
	healthHandler := api.NewHealthHandler(app.gateway, app.model)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Generation endpoints are the only slow routes. Handlers see the configured
	// deadline and degrade on their own; chi's 504 is a backstop that fires
	// timeoutGrace later for a handler that ignores its context.
	r.Group(func(r chi.Router) {
		if timeout := app.config.Server.RequestTimeoutSeconds; timeout > 0 {
			d := time.Duration(timeout) * time.Second
			r.Use(middleware.Timeout(d + timeoutGrace))
			r.Use(apiMiddleware.Deadline(d))
		}
		r.Post("/ask", generationHandler.Ask)
		r.Post("/translate", generationHandler.Translate)
		r.Post("/summary", generationHandler.Summary)
	})

	return r
}
