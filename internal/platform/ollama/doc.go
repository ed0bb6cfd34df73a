// Package ollama provides a generation.Backend that talks to a local Ollama
// server over its HTTP API. It is the self-hosted fallback candidate when no
// hosted model can be initialized.
package ollama
