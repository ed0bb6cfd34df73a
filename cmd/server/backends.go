package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/medgen-api/internal/config"
	"github.com/phrazzld/medgen-api/internal/generation"
	"github.com/phrazzld/medgen-api/internal/platform/gemini"
	"github.com/phrazzld/medgen-api/internal/platform/ollama"
)

// defaultFactories registers the backend kinds the server can build.
func defaultFactories(cfg *config.Config, logger *slog.Logger) map[string]generation.Factory {
	httpClient := &http.Client{Timeout: ollamaHTTPTimeout(cfg.Server)}

	return map[string]generation.Factory{
		generation.KindGemini: gemini.Factory(logger.With("component", "gemini_backend"), cfg.LLM.ProbeOnStartup),
		generation.KindOllama: ollama.Factory(logger.With("component", "ollama_backend"), httpClient),
	}
}

// ollamaHTTPTimeout matches the request timeout so a local model is never cut
// off before the HTTP layer gives up on the request.
func ollamaHTTPTimeout(cfg config.ServerConfig) time.Duration {
	if cfg.RequestTimeoutSeconds > 0 {
		return time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}
	return ollama.DefaultHTTPTimeout
}

// toCandidates converts configured candidates to the generation package's form.
func toCandidates(configured []config.CandidateConfig) []generation.Candidate {
	candidates := make([]generation.Candidate, 0, len(configured))
	for _, c := range configured {
		candidates = append(candidates, generation.Candidate{
			Name:    c.Name,
			Kind:    c.Kind,
			Model:   c.Model,
			APIKey:  c.APIKey,
			BaseURL: c.BaseURL,
		})
	}
	return candidates
}
