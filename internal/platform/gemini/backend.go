package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/medgen-api/internal/generation"
	"google.golang.org/genai"
)

// modelsAPI is the subset of the genai Models service used by Backend.
type modelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
	Get(ctx context.Context, model string, config *genai.GetModelConfig) (*genai.Model, error)
}

// Backend implements generation.Backend for a single Gemini model.
// It holds no mutable state and is safe for concurrent use.
type Backend struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models is the Gemini models service
	models modelsAPI

	// model is the name of the Gemini model to use
	model string
}

// NewBackend creates a Backend for the candidate's model.
//
// When probe is true the model is looked up once so an unusable key or an
// unknown model name fails here rather than on the first request. Every
// failure wraps generation.ErrBackendInit.
func NewBackend(
	ctx context.Context,
	logger *slog.Logger,
	candidate generation.Candidate,
	probe bool,
) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateCandidate(candidate); err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrBackendInit, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  candidate.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %w", generation.ErrBackendInit, err)
	}

	return newBackend(ctx, logger, client.Models, candidate.Model, probe)
}

func newBackend(
	ctx context.Context,
	logger *slog.Logger,
	models modelsAPI,
	model string,
	probe bool,
) (*Backend, error) {
	b := &Backend{
		logger: logger.With("backend", "gemini", "model", model),
		models: models,
		model:  model,
	}

	if probe {
		if _, err := models.Get(ctx, model, nil); err != nil {
			return nil, fmt.Errorf("%w: model probe for %s failed: %w", generation.ErrBackendInit, model, err)
		}
		b.logger.DebugContext(ctx, "Gemini model probe succeeded")
	}

	return b, nil
}

// Factory returns a generation.Factory building Gemini backends.
func Factory(logger *slog.Logger, probe bool) generation.Factory {
	return func(ctx context.Context, candidate generation.Candidate) (generation.Backend, error) {
		return NewBackend(ctx, logger, candidate, probe)
	}
}

// Generate sends prompt to the model and returns the concatenated text parts of
// the first candidate.
func (b *Backend) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	resp, err := b.models.GenerateContent(ctx, b.model, genai.Text(prompt), contentConfig(opts))
	if err != nil {
		b.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", fmt.Errorf("gemini: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		b.logger.WarnContext(ctx, "Gemini returned no usable content", "error", err)
		return "", err
	}

	b.logger.DebugContext(ctx, "Gemini API call successful", "output_length", len(text))
	return text, nil
}

// contentConfig maps sampling options onto Gemini's config. Gemini has no
// multiplicative repetition penalty, so the excess over 1 is sent as a
// frequency penalty.
func contentConfig(opts generation.Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		TopP:            genai.Ptr(opts.TopP),
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if penalty := opts.RepetitionPenalty - 1; penalty > 0 {
		cfg.FrequencyPenalty = genai.Ptr(penalty)
	}
	return cfg
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrNilResponse
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrEmptyOutput)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrEmptyOutput)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return sb.String(), nil
}
