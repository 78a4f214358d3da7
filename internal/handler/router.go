package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BuzzLyutic/swipe-tasks/pkg/respond"
)

// NewRouter wires every API route. accessLog toggles chi's request logger.
func NewRouter(h *TaskHandler, accessLog bool) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if accessLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Get)
				r.Delete("/", h.Delete)
				r.Put("/status", h.SetStatus)
				r.Post("/complete", h.Complete)
				r.Post("/advance", h.Advance)
			})
		})

		r.Get("/board", h.Board)
		r.Get("/home", h.Home)

		r.Route("/gestures", func(r chi.Router) {
			r.Get("/", h.DragStatus)
			r.Post("/start", h.DragStart)
			r.Post("/move", h.DragMove)
			r.Post("/end", h.DragEnd)
		})
	})

	return r
}
