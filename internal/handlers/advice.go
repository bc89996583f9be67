package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/models"
)

// HandleAdvice generates treatment advice for a stored result.
func (h *Handler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stored, exists := h.store.Get(id)
	if !exists {
		h.writeError(w, "Result not found: "+id, http.StatusNotFound)
		return
	}

	record := stored.Result.Detail
	if record == nil {
		if fallback, ok := catalog.FallbackDetail(stored.Result.Primary.DiseaseID); ok {
			record = &fallback
		} else {
			record = &models.DiseaseRecord{
				ID:       stored.Result.Primary.DiseaseID,
				NameZH:   stored.Result.Primary.DiseaseName,
				Severity: stored.Result.Primary.Severity,
			}
		}
	}

	advice, err := h.advisor.Advise(r.Context(), *record, stored.Result.Primary.Confidence)
	if err != nil {
		h.writeError(w, "Failed to generate advice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, advice)
}
