package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrTextRequired is returned when a task request carries no usable text.
	ErrTextRequired = errors.New("text required")

	// ErrBackendUnavailable is returned when no generation backend could be acquired.
	// It is permanent for the lifetime of the process.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrGenerationFailed is returned when a backend invocation fails and the task
	// has no synthetic fallback answer.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrEmptyOutput is returned when the backend produced nothing usable
	ErrEmptyOutput = errors.New("backend returned no usable output")

	// ErrContentBlocked is returned when the backend refuses the prompt on safety grounds
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrBackendInit marks a failure to initialize one backend candidate. The
	// Provider skips candidates failing with this error and tries the next one.
	ErrBackendInit = errors.New("backend initialization failed")

	// ErrUnknownBackendKind is returned when a candidate names a backend kind with
	// no registered factory.
	ErrUnknownBackendKind = errors.New("unknown backend kind")

	// ErrInvalidConfig is returned when the backend configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
