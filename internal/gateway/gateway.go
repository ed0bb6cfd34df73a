// Package gateway orchestrates a single generation task: it validates and
// normalizes the input, builds the task prompt, invokes the backend acquired at
// startup, and applies the degradation policy when generation fails.
//
// The Gateway holds no per-request state and no locks. Concurrent calls to
// Handle map directly to concurrent backend invocations.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/medgen-api/internal/generation"
	"github.com/phrazzld/medgen-api/internal/metrics"
	"github.com/phrazzld/medgen-api/internal/platform/logger"
	"github.com/phrazzld/medgen-api/internal/prompt"
	"github.com/phrazzld/medgen-api/internal/redact"
	"github.com/phrazzld/medgen-api/internal/textnorm"
)

// DefaultTargetLanguage is used when a translate or summarize request names none.
const DefaultTargetLanguage = "French"

// summaryFallbackRunes bounds the original text quoted in a summary fallback.
const summaryFallbackRunes = 200

// ErrUnknownTask is returned for a task kind the gateway does not serve.
var ErrUnknownTask = errors.New("unknown task")

// Gateway turns task requests into task results.
type Gateway struct {
	backend generation.Backend
	prompts *prompt.Builder
	logger  *slog.Logger
}

// New creates a Gateway. backend may be nil, in which case every valid request
// yields a backend-unavailable error.
func New(backend generation.Backend, prompts *prompt.Builder, logger *slog.Logger) (*Gateway, error) {
	if prompts == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Gateway{
		backend: backend,
		prompts: prompts,
		logger:  logger,
	}, nil
}

// BackendLoaded reports whether a backend was acquired.
func (g *Gateway) BackendLoaded() bool {
	return g.backend != nil
}

// Advice answers a health question.
func (g *Gateway) Advice(ctx context.Context, question string) TaskResult {
	return g.Handle(ctx, TaskRequest{Kind: generation.TaskAdvice, Text: question})
}

// Translate translates text into language.
func (g *Gateway) Translate(ctx context.Context, text, language string) TaskResult {
	return g.Handle(ctx, TaskRequest{Kind: generation.TaskTranslate, Text: text, TargetLanguage: language})
}

// Summarize summarizes medical text in language.
func (g *Gateway) Summarize(ctx context.Context, text, language string) TaskResult {
	return g.Handle(ctx, TaskRequest{Kind: generation.TaskSummarize, Text: text, TargetLanguage: language})
}

// Handle runs one task to a terminal state. It never returns a raw backend
// error: every failure is folded into the result's Status.
//
// Translate and summarize degrade to StatusPartialSuccess with a synthesized
// answer when the backend fails or produces a no-op output. Advice has no safe
// synthetic answer and yields StatusError instead.
func (g *Gateway) Handle(ctx context.Context, req TaskRequest) (result TaskResult) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	result = TaskResult{
		Kind:  req.Kind,
		Input: req.Text,
	}
	defer func() {
		task := string(req.Kind)
		if !req.Kind.Valid() {
			task = "unknown"
		}
		metrics.GenerationTotal.WithLabelValues(task, string(result.Status)).Inc()
	}()

	if !req.Kind.Valid() {
		return failed(result, fmt.Errorf("%w: %q", ErrUnknownTask, req.Kind), "unknown task")
	}

	text := textnorm.Normalize(req.Text)
	if text == "" {
		log.DebugContext(ctx, "rejecting task with empty text", "task", req.Kind)
		return failed(result, generation.ErrTextRequired, generation.ErrTextRequired.Error())
	}

	if req.Kind != generation.TaskAdvice {
		result.TargetLanguage = targetLanguage(req.TargetLanguage)
	}

	if g.backend == nil {
		log.WarnContext(ctx, "task rejected, no generation backend loaded", "task", req.Kind)
		return failed(result, generation.ErrBackendUnavailable, generation.ErrBackendUnavailable.Error())
	}

	inputChars := utf8.RuneCountInString(text)
	metrics.InputChars.Observe(float64(inputChars))

	answer, err := g.generate(ctx, req.Kind, text, result.TargetLanguage)
	if err == nil {
		result.Status = StatusSuccess
		result.Answer = answer
		log.InfoContext(ctx, "generation succeeded",
			"task", req.Kind,
			"input_chars", inputChars,
			"answer_chars", utf8.RuneCountInString(answer))
		return result
	}

	return g.degrade(ctx, log, result, text, err)
}

// generate builds the prompt, invokes the backend and applies the no-op check.
func (g *Gateway) generate(ctx context.Context, kind generation.TaskKind, text, language string) (string, error) {
	opts, err := generation.ProfileFor(kind)
	if err != nil {
		return "", err
	}

	var p string
	switch kind {
	case generation.TaskAdvice:
		p, err = g.prompts.Advice(text)
	case generation.TaskTranslate:
		p, err = g.prompts.Translate(text, language)
	case generation.TaskSummarize:
		p, err = g.prompts.Summarize(text, language)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	start := time.Now()
	raw, err := g.backend.Generate(ctx, p, opts)
	metrics.GenerationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	answer := textnorm.Normalize(raw)
	if answer == "" {
		return "", generation.ErrEmptyOutput
	}
	// Exact match only; near-identical outputs are accepted.
	if kind == generation.TaskTranslate && answer == text {
		return "", fmt.Errorf("%w: translation identical to input", generation.ErrEmptyOutput)
	}

	return answer, nil
}

// degrade applies the task-specific fallback policy after a failed or no-op generation.
func (g *Gateway) degrade(
	ctx context.Context,
	log *slog.Logger,
	result TaskResult,
	text string,
	cause error,
) TaskResult {
	err := fmt.Errorf("%w: %w", generation.ErrGenerationFailed, cause)
	detail := redact.Error(err)

	switch result.Kind {
	case generation.TaskTranslate:
		result.Answer = fmt.Sprintf("[%s] %s", result.TargetLanguage, text)
	case generation.TaskSummarize:
		excerpt, truncated := textnorm.Truncate(text, summaryFallbackRunes)
		if truncated {
			excerpt += "..."
		}
		result.Answer = fmt.Sprintf("[%s Summary] %s", result.TargetLanguage, excerpt)
	default:
		log.ErrorContext(ctx, "generation failed, no fallback for task",
			"task", result.Kind,
			"error", detail)
		return failed(result, err, detail)
	}

	log.WarnContext(ctx, "generation failed, returning fallback answer",
		"task", result.Kind,
		"target_language", result.TargetLanguage,
		"error", detail)

	result.Status = StatusPartialSuccess
	result.Err = err
	result.Detail = detail
	return result
}

func failed(result TaskResult, err error, detail string) TaskResult {
	result.Status = StatusError
	result.Answer = ""
	result.Err = err
	result.Detail = detail
	return result
}

func targetLanguage(requested string) string {
	if lang := textnorm.Normalize(requested); lang != "" {
		return lang
	}
	return DefaultTargetLanguage
}
