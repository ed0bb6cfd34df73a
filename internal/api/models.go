package api

// Response type values, kept from the original service's wire format.
const (
	TypeHealthAdvice = "health_advice"
	TypeTranslation  = "translation"
	TypeSummary      = "summary"
)

// MaxTextLength bounds question and text fields, in characters.
const MaxTextLength = 8000

// AskRequest defines the payload for the /ask endpoint.
// Emptiness is checked after normalization by the gateway.
type AskRequest struct {
	Question string `json:"question" validate:"max=8000"`
}

// TextRequest defines the payload for the /translate and /summary endpoints.
type TextRequest struct {
	Text           string `json:"text"            validate:"max=8000"`
	TargetLanguage string `json:"target_language" validate:"max=64"`
}

// AskResponse is the successful /ask response.
type AskResponse struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
	Status   string `json:"status"`
	Type     string `json:"type"`
}

// TaskResponse is the /translate and /summary response for both success and
// partial success. Error carries the redacted failure detail of a fallback answer.
type TaskResponse struct {
	Answer         string `json:"answer"`
	OriginalText   string `json:"original_text"`
	TargetLanguage string `json:"target_language"`
	Status         string `json:"status"`
	Type           string `json:"type"`
	Error          string `json:"error,omitempty"`
}

// HealthResponse is the /health response.
type HealthResponse struct {
	Status      string   `json:"status"`
	ModelLoaded bool     `json:"model_loaded"`
	Model       string   `json:"model,omitempty"`
	Version     string   `json:"version"`
	Endpoints   []string `json:"endpoints"`
}

// RootResponse is the GET / response.
type RootResponse struct {
	Message     string `json:"message"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
}
