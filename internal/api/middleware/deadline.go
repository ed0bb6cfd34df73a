package middleware

import (
	"context"
	"net/http"
	"time"
)

// Deadline bounds the request context by d without writing a response when it
// expires. Handlers observe the deadline through their context and answer on
// their own terms, e.g. with a fallback.
func Deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
