// Package completion exposes the stateless completion gateway endpoint used
// by browser clients that keep the transcript on their side.
package completion

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuschat/backend/internal/model/chat"
	"github.com/campuschat/backend/internal/model/lang"
	aiService "github.com/campuschat/backend/internal/service/ai"
	"github.com/campuschat/backend/pkg/utils"
)

// Handler serves POST /chat.
type Handler struct {
	ai *aiService.Service
}

// New creates the completion handler. A nil service keeps the route mounted
// but answers every call with a configuration error.
func New(ai *aiService.Service) *Handler {
	return &Handler{ai: ai}
}

// RegisterRoutes mounts the gateway endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

type chatRequest struct {
	Messages         chat.Transcript `json:"messages"`
	SelectedLanguage string          `json:"selectedLanguage"`
	SessionID        string          `json:"sessionId"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unrecognized or absent tags fall back to French, the documented default.
	language := lang.Default()
	if payload.SelectedLanguage != "" {
		if parsed, ok := lang.Parse(payload.SelectedLanguage); ok {
			language = parsed
		}
	}

	if h.ai == nil {
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "configuration error",
			"details": "no provider credential is configured",
		})
		return
	}

	reply, err := h.ai.Complete(r.Context(), payload.Messages, language, payload.SessionID)
	if err != nil {
		if errors.Is(err, aiService.ErrInvalidRequest) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusBadGateway, map[string]string{
			"error":    "upstream failure",
			"details":  err.Error(),
			"language": string(language),
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}
