package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RequestTimeoutSeconds bounds each HTTP request, generation included. 0 disables it.
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=0"`
	CORSAllowedOrigins    []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// LLMConfig contains all LLM integration related settings.
//
// Backend candidates are tried in order at startup. When Candidates is empty the
// order is derived: one Gemini candidate per entry of GeminiModels, then Ollama
// if OllamaBaseURL is set.
type LLMConfig struct {
	GeminiAPIKey       string            `mapstructure:"gemini_api_key"`
	GeminiModels       []string          `mapstructure:"gemini_models" validate:"dive,required"`
	OllamaBaseURL      string            `mapstructure:"ollama_base_url" validate:"omitempty,url"`
	OllamaModel        string            `mapstructure:"ollama_model" validate:"required_with=OllamaBaseURL"`
	ProbeOnStartup     bool              `mapstructure:"probe_on_startup"`
	InitTimeoutSeconds int               `mapstructure:"init_timeout_seconds" validate:"gt=0"`
	Candidates         []CandidateConfig `mapstructure:"candidates" validate:"dive"`
}

// CandidateConfig is one explicitly configured backend candidate.
type CandidateConfig struct {
	Name    string `mapstructure:"name"`
	Kind    string `mapstructure:"kind" validate:"required,oneof=gemini ollama"`
	Model   string `mapstructure:"model" validate:"required"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// ResolvedCandidates returns the ordered backend candidates. Explicit candidates
// inherit the shared Gemini API key and Ollama base URL when they set none.
func (c LLMConfig) ResolvedCandidates() []CandidateConfig {
	if len(c.Candidates) > 0 {
		resolved := make([]CandidateConfig, 0, len(c.Candidates))
		for _, candidate := range c.Candidates {
			switch candidate.Kind {
			case "gemini":
				if candidate.APIKey == "" {
					candidate.APIKey = c.GeminiAPIKey
				}
			case "ollama":
				if candidate.BaseURL == "" {
					candidate.BaseURL = c.OllamaBaseURL
				}
			}
			resolved = append(resolved, candidate)
		}
		return resolved
	}

	resolved := make([]CandidateConfig, 0, len(c.GeminiModels)+1)
	for _, model := range c.GeminiModels {
		resolved = append(resolved, CandidateConfig{
			Name:   "gemini/" + model,
			Kind:   "gemini",
			Model:  model,
			APIKey: c.GeminiAPIKey,
		})
	}
	if c.OllamaBaseURL != "" {
		resolved = append(resolved, CandidateConfig{
			Name:    "ollama/" + c.OllamaModel,
			Kind:    "ollama",
			Model:   c.OllamaModel,
			BaseURL: c.OllamaBaseURL,
		})
	}
	return resolved
}
