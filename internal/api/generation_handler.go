package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/medgen-api/internal/api/shared"
	"github.com/phrazzld/medgen-api/internal/gateway"
	"github.com/phrazzld/medgen-api/internal/generation"
)

// TaskGateway is the gateway capability used by the HTTP handlers.
type TaskGateway interface {
	Handle(ctx context.Context, req gateway.TaskRequest) gateway.TaskResult
	BackendLoaded() bool
}

// GenerationHandler handles the generation endpoints.
type GenerationHandler struct {
	gateway TaskGateway
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(gw TaskGateway) *GenerationHandler {
	return &GenerationHandler{
		gateway: gw,
	}
}

// Ask handles POST /ask requests
func (h *GenerationHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !h.decode(w, r, &req) {
		return
	}

	result := h.gateway.Handle(r.Context(), gateway.TaskRequest{
		Kind: generation.TaskAdvice,
		Text: req.Question,
	})
	if !result.OK() {
		HandleAPIError(w, r, result.Err, result.Detail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AskResponse{
		Answer:   result.Answer,
		Question: result.Input,
		Status:   string(result.Status),
		Type:     TypeHealthAdvice,
	})
}

// Translate handles POST /translate requests
func (h *GenerationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	h.handleText(w, r, generation.TaskTranslate, TypeTranslation)
}

// Summary handles POST /summary requests
func (h *GenerationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.handleText(w, r, generation.TaskSummarize, TypeSummary)
}

// handleText serves the text tasks. A partial success is a 200 whose error
// field carries the redacted failure detail.
func (h *GenerationHandler) handleText(
	w http.ResponseWriter,
	r *http.Request,
	kind generation.TaskKind,
	responseType string,
) {
	var req TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result := h.gateway.Handle(r.Context(), gateway.TaskRequest{
		Kind:           kind,
		Text:           req.Text,
		TargetLanguage: req.TargetLanguage,
	})
	if !result.OK() {
		HandleAPIError(w, r, result.Err, result.Detail)
		return
	}

	resp := TaskResponse{
		Answer:         result.Answer,
		OriginalText:   result.Input,
		TargetLanguage: result.TargetLanguage,
		Status:         string(result.Status),
		Type:           responseType,
	}
	if result.Status == gateway.StatusPartialSuccess {
		resp.Error = result.Detail
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// decode parses and validates the request body, writing a 400 response and
// returning false on failure.
func (h *GenerationHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
