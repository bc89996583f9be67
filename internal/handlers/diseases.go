package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/models"
)

// HandleDiseases lists the disease catalog, filtered by the search,
// category, and severity query parameters.
func (h *Handler) HandleDiseases(w http.ResponseWriter, r *http.Request) {
	records := catalog.Load(r.Context(), h.source)

	query := catalog.NewQuery()
	query.Term = r.URL.Query().Get("search")
	query.Category = models.ParseCategory(r.URL.Query().Get("category"))
	query.Severity = models.ParseSeverity(r.URL.Query().Get("severity"))

	matched, total := catalog.Search(records, query)

	h.writeJSON(w, map[string]any{
		"diseases": matched,
		"total":    total,
	})
}

// HandleDiseaseDetail returns one catalog entry. The remote catalog is
// tried first, then the built-in fallback set.
func (h *Handler) HandleDiseaseDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.client != nil {
		if record, err := h.client.Disease(r.Context(), id); err == nil {
			h.writeJSON(w, record)
			return
		}
	}

	if record, ok := catalog.FallbackDetail(id); ok {
		h.writeJSON(w, record)
		return
	}

	h.writeError(w, "Disease not found: "+id, http.StatusNotFound)
}

// HandleStats reports dataset statistics, with placeholder numbers when
// the backend is unreachable.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if h.client != nil {
		if stats, err := h.client.Stats(r.Context()); err == nil {
			h.writeJSON(w, stats)
			return
		}
	}
	h.writeJSON(w, api.PlaceholderStats())
}
