package gateway

import "github.com/phrazzld/medgen-api/internal/generation"

// Status discriminates the three terminal outcomes of a task.
type Status string

const (
	// StatusSuccess means the answer was produced by the backend.
	StatusSuccess Status = "success"
	// StatusPartialSuccess means the answer is a synthesized fallback.
	StatusPartialSuccess Status = "partial_success"
	// StatusError means no answer is available.
	StatusError Status = "error"
)

// TaskRequest is one inbound task. TargetLanguage is only used by translate and
// summarize and defaults to DefaultTargetLanguage.
type TaskRequest struct {
	Kind           generation.TaskKind
	Text           string
	TargetLanguage string
}

// TaskResult is the outcome of Gateway.Handle.
type TaskResult struct {
	Status Status
	// Answer is empty when Status is StatusError.
	Answer string
	// Input echoes the text of the request.
	Input          string
	Kind           generation.TaskKind
	TargetLanguage string
	// Err wraps one of the generation sentinel errors for classification. It is
	// set for StatusError and for StatusPartialSuccess.
	Err error
	// Detail is a redacted, client-safe description of Err.
	Detail string
}

// OK reports whether the result carries a usable answer.
func (r TaskResult) OK() bool {
	return r.Status == StatusSuccess || r.Status == StatusPartialSuccess
}
