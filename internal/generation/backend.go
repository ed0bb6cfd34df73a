package generation

import "context"

// Backend is the text-generation capability used by the gateway.
// Implementations must be safe to call from concurrent requests; any internal
// serialization is the implementation's concern.
type Backend interface {
	// Generate returns the text produced for prompt using the sampling options.
	// Errors are returned as-is and classified by the caller.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// BackendFunc adapts an ordinary function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string, opts Options) (string, error)

// Generate implements Backend.
func (f BackendFunc) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	return f(ctx, prompt, opts)
}
