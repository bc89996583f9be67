package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router assembles the HTTP API served by the serve command.
func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/identify", h.HandleIdentify)
		r.Get("/diseases", h.HandleDiseases)
		r.Get("/diseases/{id}", h.HandleDiseaseDetail)
		r.Get("/stats", h.HandleStats)
		r.Route("/results", func(r chi.Router) {
			r.Get("/", h.HandleResults)
			r.Get("/{id}", h.HandleResultDetail)
			r.Delete("/{id}", h.HandleDeleteResult)
			r.Get("/{id}/advice", h.HandleAdvice)
		})
	})

	return r
}
