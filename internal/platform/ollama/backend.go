package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/medgen-api/internal/generation"
)

// DefaultHTTPTimeout bounds a single Ollama HTTP call when no client is supplied.
const DefaultHTTPTimeout = 120 * time.Second

// Backend implements generation.Backend using Ollama's /api/generate endpoint.
type Backend struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

type generateOptions struct {
	NumPredict    int32   `json:"num_predict,omitempty"`
	Temperature   float32 `json:"temperature"`
	TopP          float32 `json:"top_p"`
	RepeatPenalty float32 `json:"repeat_penalty,omitempty"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type tagsResponse struct {
	Models []struct {
		Name  string `json:"name"`
		Model string `json:"model"`
	} `json:"models"`
}

// NewBackend creates a Backend for the candidate and checks that the server is
// reachable and has the model pulled. Every failure wraps generation.ErrBackendInit.
func NewBackend(
	ctx context.Context,
	logger *slog.Logger,
	client *http.Client,
	candidate generation.Candidate,
) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if candidate.BaseURL == "" {
		return nil, fmt.Errorf("%w: %w: ollama base URL cannot be empty",
			generation.ErrBackendInit, generation.ErrInvalidConfig)
	}
	if candidate.Model == "" {
		return nil, fmt.Errorf("%w: %w: model name cannot be empty",
			generation.ErrBackendInit, generation.ErrInvalidConfig)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	b := &Backend{
		baseURL: strings.TrimRight(candidate.BaseURL, "/"),
		model:   candidate.Model,
		client:  client,
		logger:  logger.With("backend", "ollama", "model", candidate.Model),
	}

	if err := b.checkModel(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrBackendInit, err)
	}

	return b, nil
}

// Factory returns a generation.Factory building Ollama backends with client.
func Factory(logger *slog.Logger, client *http.Client) generation.Factory {
	return func(ctx context.Context, candidate generation.Candidate) (generation.Backend, error) {
		return NewBackend(ctx, logger, client, candidate)
	}
}

// Generate runs a non-streaming completion.
func (b *Backend) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  b.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			NumPredict:    opts.MaxOutputTokens,
			Temperature:   opts.Temperature,
			TopP:          opts.TopP,
			RepeatPenalty: opts.RepetitionPenalty,
		},
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		b.logger.ErrorContext(ctx, "Ollama request failed", "error", err)
		return "", fmt.Errorf("ollama: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	b.logger.DebugContext(ctx, "Ollama generation complete", "output_length", len(genResp.Response))
	return genResp.Response, nil
}

// checkModel lists the local models and looks for b.model, accepting an
// implicit ":latest" tag.
func (b *Backend) checkModel(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("ollama: create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: unexpected status %d listing models", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return fmt.Errorf("ollama: decode model list: %w", err)
	}

	for _, m := range tags.Models {
		for _, name := range []string{m.Name, m.Model} {
			if name == b.model || name == b.model+":latest" {
				return nil
			}
		}
	}

	return fmt.Errorf("ollama: model %q is not available on %s", b.model, b.baseURL)
}
