package api

import (
	"net/http"

	"github.com/phrazzld/medgen-api/internal/api/shared"
	"github.com/phrazzld/medgen-api/internal/version"
)

// RootMessage is the banner returned by GET /.
const RootMessage = "Health Chatbot API is running"

// Endpoints lists the generation endpoints reported by /health.
var Endpoints = []string{"ask", "translate", "summary"}

// HealthHandler serves liveness and status information.
type HealthHandler struct {
	gateway TaskGateway
	model   string
}

// NewHealthHandler creates a HealthHandler. model labels the loaded backend
// candidate and is empty when none was loaded.
func NewHealthHandler(gw TaskGateway, model string) *HealthHandler {
	return &HealthHandler{gateway: gw, model: model}
}

// Health handles GET /health requests. The process is healthy whenever it can
// answer; model_loaded reports whether generation is possible.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	loaded := h.gateway.BackendLoaded()
	resp := HealthResponse{
		Status:      "healthy",
		ModelLoaded: loaded,
		Version:     version.Version,
		Endpoints:   Endpoints,
	}
	if loaded {
		resp.Model = h.model
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Root handles GET / requests.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message:     RootMessage,
		ModelLoaded: h.gateway.BackendLoaded(),
		Version:     version.Version,
	})
}
