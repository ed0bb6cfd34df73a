// Package generation defines the boundary between the application core and the
// text-generation backends (Gemini, Ollama). It holds the Backend interface, the
// fixed per-task sampling profiles, the sentinel errors used to classify
// generation failures, and the Provider that acquires a working Backend from an
// ordered list of candidate configurations at startup.
package generation
