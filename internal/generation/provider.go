package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Backend kinds understood by the default factories.
const (
	KindGemini = "gemini"
	KindOllama = "ollama"
)

// Candidate describes one backend configuration the Provider may try.
type Candidate struct {
	// Name identifies the candidate in logs and health output.
	Name string
	// Kind selects the factory used to build the backend.
	Kind string
	// Model is the backend-specific model identifier.
	Model string
	// APIKey is used by hosted backends.
	APIKey string
	// BaseURL is used by self-hosted backends.
	BaseURL string
}

// Label returns Name, or "kind/model" when no name was configured.
func (c Candidate) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Kind + "/" + c.Model
}

// Factory builds a Backend for a candidate. Initialization problems that should
// make the Provider move on to the next candidate must wrap ErrBackendInit.
type Factory func(ctx context.Context, candidate Candidate) (Backend, error)

// Loaded is the result of a successful acquisition.
type Loaded struct {
	Backend   Backend
	Candidate Candidate
}

// Provider acquires a working Backend from an ordered list of candidates.
// Earlier candidates are preferred; later ones are degraded-capability fallbacks.
type Provider struct {
	logger     *slog.Logger
	candidates []Candidate
	factories  map[string]Factory
}

// NewProvider creates a Provider over candidates, building backends with the
// factory registered for each candidate's kind.
func NewProvider(logger *slog.Logger, candidates []Candidate, factories map[string]Factory) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	registered := make(map[string]Factory, len(factories))
	for kind, factory := range factories {
		if factory == nil {
			return nil, fmt.Errorf("%w: nil factory for kind %q", ErrInvalidConfig, kind)
		}
		registered[kind] = factory
	}

	return &Provider{
		logger:     logger,
		candidates: ordered,
		factories:  registered,
	}, nil
}

// Acquire tries each candidate in order and returns the first backend that
// initializes. Candidates failing with ErrBackendInit are skipped. Any other
// error stops acquisition and is returned unchanged, so configuration bugs and
// cancellation are not mistaken for an unavailable backend.
//
// When every candidate fails initialization, Acquire returns ErrBackendUnavailable.
// Callers treat that as permanent; there is no retry.
func (p *Provider) Acquire(ctx context.Context) (*Loaded, error) {
	if len(p.candidates) == 0 {
		p.logger.WarnContext(ctx, "no backend candidates configured")
		return nil, fmt.Errorf("%w: no candidates configured", ErrBackendUnavailable)
	}

	for i, candidate := range p.candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("backend acquisition interrupted: %w", err)
		}

		factory, ok := p.factories[candidate.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q (candidate %s)", ErrUnknownBackendKind, candidate.Kind, candidate.Label())
		}

		p.logger.InfoContext(ctx, "initializing backend candidate",
			"candidate", candidate.Label(),
			"kind", candidate.Kind,
			"model", candidate.Model,
			"position", i+1,
			"total", len(p.candidates))

		backend, err := factory(ctx, candidate)
		if err != nil {
			if !errors.Is(err, ErrBackendInit) {
				return nil, fmt.Errorf("backend candidate %s: %w", candidate.Label(), err)
			}
			p.logger.WarnContext(ctx, "backend candidate failed to initialize",
				"candidate", candidate.Label(),
				"error", err)
			continue
		}
		if backend == nil {
			return nil, fmt.Errorf("backend candidate %s: factory returned nil backend", candidate.Label())
		}

		p.logger.InfoContext(ctx, "backend acquired",
			"candidate", candidate.Label(),
			"kind", candidate.Kind,
			"model", candidate.Model)
		return &Loaded{Backend: backend, Candidate: candidate}, nil
	}

	return nil, fmt.Errorf("%w: all %d candidates failed to initialize", ErrBackendUnavailable, len(p.candidates))
}
