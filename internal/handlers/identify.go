package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/phytoscan/phytoscan/internal/session"
	"github.com/phytoscan/phytoscan/internal/validate"
)

// HandleIdentify accepts a leaf photo upload and runs the full
// diagnostic session, falling back to the demo result when the
// inference backend is unreachable.
func (h *Handler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	// Read one byte past the cap so oversized uploads are detectable
	// without buffering the whole body.
	fileData, err := io.ReadAll(io.LimitReader(file, validate.MaxBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	tmpDir, err := os.MkdirTemp("", "phytoscan-upload")
	if err != nil {
		h.writeError(w, "Failed to stage upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(header.Filename))
	if err := os.WriteFile(tmpPath, fileData, 0644); err != nil {
		h.writeError(w, "Failed to stage upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	controller := session.New(h.client)
	if err := controller.SelectFile(tmpPath); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := controller.Submit(r.Context())
	if err != nil {
		h.writeError(w, "Diagnosis failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stored := h.store.Add(header.Filename, outcome.Preview, outcome.Result)
	h.writeJSON(w, stored)
}
