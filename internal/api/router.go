package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the application router with all routes and middleware
func NewRouter(svc PracticeService, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	h := NewHandler(svc, log)

	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log.With("component", "http")))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.RegisterUser)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/review", h.GetReview)
			r.Get("/vocabulary/new", h.GetNewVocabulary)
			r.Get("/stats", h.GetStats)
			r.Get("/weak-areas", h.GetWeakAreas)
			r.Get("/sessions", h.ListSessions)
			r.Post("/sessions", h.StartSession)
			r.Post("/attempts", h.RecordAttempt)
		})

		r.Get("/sessions/{sessionID}", h.GetSession)
		r.Post("/sessions/{sessionID}/complete", h.CompleteSession)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
