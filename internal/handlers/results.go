package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleResults lists stored diagnostic results in insertion order.
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{
		"results": h.store.All(),
	})
}

// HandleResultDetail returns one stored result.
func (h *Handler) HandleResultDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stored, exists := h.store.Get(id)
	if !exists {
		h.writeError(w, "Result not found: "+id, http.StatusNotFound)
		return
	}
	h.writeJSON(w, stored)
}

// HandleDeleteResult removes one stored result.
func (h *Handler) HandleDeleteResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, exists := h.store.Get(id); !exists {
		h.writeError(w, "Result not found: "+id, http.StatusNotFound)
		return
	}
	h.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}
