package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/medgen-api/internal/generation"
)

// ErrMockBackend is the default error returned by a failing MockBackend.
var ErrMockBackend = errors.New("mock backend failure")

// MockBackend implements generation.Backend for testing
type MockBackend struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, opts generation.Options) (string, error)

	// Default response values
	Output string
	Err    error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Options contains all sampling options passed to Generate calls
		Options []generation.Options
	}
}

// Generate implements the generation.Backend interface
func (m *MockBackend) Generate(
	ctx context.Context,
	prompt string,
	opts generation.Options,
) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Options = append(m.GenerateCalls.Options, opts)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, opts)
	}

	return m.Output, m.Err
}

// CallCount returns how many times Generate has been called.
func (m *MockBackend) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the most recent prompt, or "" if Generate was never called.
func (m *MockBackend) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// LastOptions returns the most recent sampling options.
func (m *MockBackend) LastOptions() generation.Options {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Options) == 0 {
		return generation.Options{}
	}
	return m.GenerateCalls.Options[len(m.GenerateCalls.Options)-1]
}

// NewMockBackendWithOutput creates a MockBackend that always returns output
func NewMockBackendWithOutput(output string) *MockBackend {
	return &MockBackend{Output: output}
}

// NewMockBackendWithError creates a MockBackend that always fails with err
func NewMockBackendWithError(err error) *MockBackend {
	if err == nil {
		err = ErrMockBackend
	}
	return &MockBackend{Err: err}
}

// NewEchoBackend creates a MockBackend that returns text unchanged, simulating
// a model that ignores its instructions. The echoed text is produced by extract,
// which receives the full prompt.
func NewEchoBackend(extract func(prompt string) string) *MockBackend {
	return &MockBackend{
		GenerateFn: func(_ context.Context, prompt string, _ generation.Options) (string, error) {
			return extract(prompt), nil
		},
	}
}

// Reset resets the call tracking state
func (m *MockBackend) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Options = nil
}
