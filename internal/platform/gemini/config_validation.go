package gemini

import (
	"fmt"

	"github.com/phrazzld/medgen-api/internal/generation"
)

// validateCandidate checks the settings a Gemini candidate cannot work without.
func validateCandidate(candidate generation.Candidate) error {
	if candidate.Kind != "" && candidate.Kind != generation.KindGemini {
		return fmt.Errorf("%w: candidate kind %q is not %q",
			generation.ErrInvalidConfig, candidate.Kind, generation.KindGemini)
	}

	if candidate.APIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if candidate.Model == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}
