package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when Generate is called without a prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrNilResponse is returned when the API returns neither a response nor an error.
	ErrNilResponse = errors.New("gemini returned a nil response")
)
