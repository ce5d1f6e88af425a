// Package chat exposes the session-scoped conversation API used by the web
// widget: session creation, message submission and the localized UI strings.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuschat/backend/internal/model/chat"
	"github.com/campuschat/backend/internal/model/lang"
	chatService "github.com/campuschat/backend/internal/service/chat"
	"github.com/campuschat/backend/pkg/utils"
)

// Handler serves the conversation routes.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the conversation handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers session and language routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/messages", h.handleListMessages)
	r.Post("/session/{sessionID}/messages", h.handleSendMessage)
	r.Get("/languages", h.handleListLanguages)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, transcript, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"session":  session,
		"messages": transcript,
	})
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	transcript, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": transcript})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.chatSvc.Submit(r.Context(), sessionID, payload.Content)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, chatService.ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, chatService.ErrBusy):
			status = http.StatusConflict
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	if added == nil {
		added = chat.Transcript{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": added})
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	type languageInfo struct {
		Tag         string `json:"tag"`
		Label       string `json:"label"`
		Placeholder string `json:"placeholder"`
		SendLabel   string `json:"sendLabel"`
	}

	all := lang.All()
	items := make([]languageInfo, 0, len(all))
	for _, l := range all {
		items = append(items, languageInfo{
			Tag:         string(l),
			Label:       l.Label(),
			Placeholder: l.Placeholder(),
			SendLabel:   l.SendLabel(),
		})
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"languages": items})
}
