// Package gemini provides an implementation of the generation.Backend interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture. It
// maps the generation package's sampling options onto Gemini's
// GenerateContentConfig and folds Gemini-specific failures (safety blocks,
// empty candidates) into the generation sentinel errors, without exposing the
// genai client to the rest of the application.
//
// Factory returns a generation.Factory so Gemini models can take part in the
// Provider's ordered candidate list. Configuration and probe failures wrap
// generation.ErrBackendInit, which makes the Provider move on to the next
// candidate.
package gemini
