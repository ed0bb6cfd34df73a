package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/medgen-api/internal/api/shared"
	"github.com/phrazzld/medgen-api/internal/gateway"
	"github.com/phrazzld/medgen-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Bad request errors
	case errors.Is(err, generation.ErrTextRequired),
		errors.Is(err, gateway.ErrUnknownTask),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// No backend was acquired at startup
	case errors.Is(err, generation.ErrBackendUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error, including ErrGenerationFailed
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrTextRequired):
		return "text required"

	case errors.Is(err, gateway.ErrUnknownTask):
		return "Unknown task"

	case errors.Is(err, generation.ErrBackendUnavailable):
		return "backend unavailable"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was declined by the model's safety filters"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate an answer"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err, using the status code and
// client message derived from its type. A non-empty message overrides the
// derived one. A missing backend is an operational problem and is logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if errors.Is(err, generation.ErrBackendUnavailable) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		field := jsonFieldName(fe.Field())
		if tag := fe.Tag(); tag != "" {
			return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
		}
		return fmt.Sprintf("Invalid %s", field)
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// jsonFieldName converts a Go field name such as TargetLanguage to its JSON
// form target_language.
func jsonFieldName(field string) string {
	var sb strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
