package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// clearedEnv blanks every variable Load reads so tests start from defaults.
func clearedEnv(overrides map[string]string) map[string]string {
	env := map[string]string{
		"MEDGEN_CONFIG_FILE":                    "",
		"MEDGEN_SERVER_PORT":                    "",
		"MEDGEN_SERVER_LOG_LEVEL":               "",
		"MEDGEN_SERVER_REQUEST_TIMEOUT_SECONDS": "",
		"MEDGEN_SERVER_CORS_ALLOWED_ORIGINS":    "",
		"MEDGEN_LLM_GEMINI_API_KEY":             "",
		"MEDGEN_LLM_GEMINI_MODELS":              "",
		"MEDGEN_LLM_OLLAMA_BASE_URL":            "",
		"MEDGEN_LLM_OLLAMA_MODEL":               "",
		"MEDGEN_LLM_PROBE_ON_STARTUP":           "",
		"MEDGEN_LLM_INIT_TIMEOUT_SECONDS":       "",
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// TestLoadDefaults verifies the defaults applied when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(nil))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 5000, cfg.Server.Port, "Default server port should be 5000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 120, cfg.Server.RequestTimeoutSeconds)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash"}, cfg.LLM.GeminiModels)
	assert.Equal(t, 30, cfg.LLM.InitTimeoutSeconds)
	assert.False(t, cfg.LLM.ProbeOnStartup)
	assert.Empty(t, cfg.LLM.OllamaBaseURL)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(map[string]string{
		"MEDGEN_SERVER_PORT":              "9090",
		"MEDGEN_SERVER_LOG_LEVEL":         "debug",
		"MEDGEN_LLM_GEMINI_API_KEY":       "test-api-key",
		"MEDGEN_LLM_GEMINI_MODELS":        "gemini-2.5-pro,gemini-2.0-flash",
		"MEDGEN_LLM_OLLAMA_BASE_URL":      "http://localhost:11434",
		"MEDGEN_LLM_OLLAMA_MODEL":         "llama3.2",
		"MEDGEN_LLM_PROBE_ON_STARTUP":     "true",
		"MEDGEN_LLM_INIT_TIMEOUT_SECONDS": "5",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, []string{"gemini-2.5-pro", "gemini-2.0-flash"}, cfg.LLM.GeminiModels)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaBaseURL)
	assert.Equal(t, "llama3.2", cfg.LLM.OllamaModel)
	assert.True(t, cfg.LLM.ProbeOnStartup)
	assert.Equal(t, 5, cfg.LLM.InitTimeoutSeconds)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "invalid log level",
			env:  map[string]string{"MEDGEN_SERVER_LOG_LEVEL": "verbose"},
		},
		{
			name: "port out of range",
			env:  map[string]string{"MEDGEN_SERVER_PORT": "70000"},
		},
		{
			name: "ollama url without model",
			env:  map[string]string{"MEDGEN_LLM_OLLAMA_BASE_URL": "http://localhost:11434"},
		},
		{
			name: "malformed ollama url",
			env: map[string]string{
				"MEDGEN_LLM_OLLAMA_BASE_URL": "not a url",
				"MEDGEN_LLM_OLLAMA_MODEL":    "llama3.2",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, clearedEnv(tc.env))
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "medgen.yaml")
	content := `
server:
  port: 6000
llm:
  gemini_api_key: file-key
  ollama_base_url: http://ollama:11434
  candidates:
    - kind: ollama
      model: meditron
    - name: primary
      kind: gemini
      model: gemini-2.0-flash
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cleanup := setupEnv(t, clearedEnv(map[string]string{
		"MEDGEN_CONFIG_FILE":      path,
		"MEDGEN_LLM_OLLAMA_MODEL": "llama3.2",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port, "file value should apply")
	assert.Equal(t, "info", cfg.Server.LogLevel, "default should still apply")
	require.Len(t, cfg.LLM.Candidates, 2)

	resolved := cfg.LLM.ResolvedCandidates()
	require.Len(t, resolved, 2)
	assert.Equal(t, CandidateConfig{
		Kind:    "ollama",
		Model:   "meditron",
		BaseURL: "http://ollama:11434",
	}, resolved[0])
	assert.Equal(t, CandidateConfig{
		Name:   "primary",
		Kind:   "gemini",
		Model:  "gemini-2.0-flash",
		APIKey: "file-key",
	}, resolved[1])
}

func TestLoadMissingConfigFile(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(map[string]string{
		"MEDGEN_CONFIG_FILE": filepath.Join(t.TempDir(), "absent.yaml"),
	}))
	defer cleanup()

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidCandidateKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medgen.yaml")
	content := `
llm:
  candidates:
    - kind: openai
      model: gpt-4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cleanup := setupEnv(t, clearedEnv(map[string]string{"MEDGEN_CONFIG_FILE": path}))
	defer cleanup()

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestResolvedCandidatesDerived(t *testing.T) {
	tests := []struct {
		name     string
		cfg      LLMConfig
		expected []CandidateConfig
	}{
		{
			name:     "nothing configured",
			cfg:      LLMConfig{},
			expected: []CandidateConfig{},
		},
		{
			name: "gemini models in order",
			cfg: LLMConfig{
				GeminiAPIKey: "k",
				GeminiModels: []string{"a", "b"},
			},
			expected: []CandidateConfig{
				{Name: "gemini/a", Kind: "gemini", Model: "a", APIKey: "k"},
				{Name: "gemini/b", Kind: "gemini", Model: "b", APIKey: "k"},
			},
		},
		{
			name: "ollama appended last",
			cfg: LLMConfig{
				GeminiModels:  []string{"a"},
				OllamaBaseURL: "http://localhost:11434",
				OllamaModel:   "llama3.2",
			},
			expected: []CandidateConfig{
				{Name: "gemini/a", Kind: "gemini", Model: "a"},
				{Name: "ollama/llama3.2", Kind: "ollama", Model: "llama3.2", BaseURL: "http://localhost:11434"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.ResolvedCandidates())
		})
	}
}
