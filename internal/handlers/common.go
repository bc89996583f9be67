// Package handlers exposes the diagnostic pipeline over HTTP for local
// frontends. The same validation, session, and catalog code backs the
// CLI and these endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phytoscan/phytoscan/internal/advisor"
	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/storage"
)

type Handler struct {
	store   *storage.ResultStore
	client  *api.Client
	source  catalog.Source
	advisor advisor.Provider
}

func New(client *api.Client, source catalog.Source, adv advisor.Provider) *Handler {
	return &Handler{
		store:   storage.New(),
		client:  client,
		source:  source,
		advisor: adv,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}
