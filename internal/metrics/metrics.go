// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route pattern, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medgen_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerationTotal counts gateway outcomes per task.
	// outcome is one of success, partial_success, error.
	GenerationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medgen_generation_total",
		Help: "Generation requests handled by the gateway, by task and outcome.",
	}, []string{"task", "outcome"})

	// GenerationDuration tracks backend latency per task.
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "medgen_generation_duration_seconds",
		Help:    "Time spent waiting on the generation backend.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"task"})

	// InputChars tracks the distribution of normalized input lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "medgen_input_chars",
		Help:    "Number of characters in normalized task input.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// BackendLoaded is 1 when a generation backend was acquired at startup.
	BackendLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "medgen_backend_loaded",
		Help: "Whether a generation backend is loaded (1) or not (0), by candidate.",
	}, []string{"candidate"})
)
