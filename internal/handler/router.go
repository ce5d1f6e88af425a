package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/campuschat/backend/internal/handler/chat"
	"github.com/campuschat/backend/internal/handler/completion"
	middlewarePkg "github.com/campuschat/backend/internal/middleware"
	aiService "github.com/campuschat/backend/internal/service/ai"
	chatService "github.com/campuschat/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, aiSvc *aiService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Stateless gateway endpoint for clients that own their transcript.
	completion.New(aiSvc).RegisterRoutes(r)

	// Session-scoped conversation API for the hosted widget.
	sessions := chatHandler.New(chatSvc)
	r.Route("/api", func(api chi.Router) {
		sessions.RegisterRoutes(api)
	})

	return r
}
