// Package textnorm canonicalizes user-supplied and model-generated text before it
// is embedded in prompts or returned to clients.
package textnorm

import (
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode canonical composition (NFC), collapses every run of
// whitespace (spaces, tabs, newlines and other Unicode spaces) into a single space,
// and trims the result.
//
// Normalize never panics. If normalization fails for any reason the original input
// is returned unchanged.
func Normalize(text string) (out string) {
	if text == "" {
		return text
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("text normalization failed, returning input unchanged",
				"panic", r,
				"input_length", len(text))
			out = text
		}
	}()

	composed := norm.NFC.String(text)
	return strings.Join(strings.Fields(composed), " ")
}

// Truncate returns at most limit runes of text. The boolean reports whether the
// text was shortened.
func Truncate(text string, limit int) (string, bool) {
	if limit <= 0 {
		return "", text != ""
	}

	count := 0
	for i := range text {
		if count == limit {
			return text[:i], true
		}
		count++
	}
	return text, false
}
