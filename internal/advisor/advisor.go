// Package advisor produces management advice for a diagnosed disease.
// The static provider serves the catalog's curated guidance; the gemini
// provider generates advice with a generative model.
package advisor

import (
	"context"
	"log/slog"
	"os"

	"github.com/phytoscan/phytoscan/internal/models"
)

// Advice is the guidance attached to a diagnostic result.
type Advice struct {
	Summary    string   `json:"summary"`
	Immediate  []string `json:"immediate,omitempty"`
	Preventive []string `json:"preventive,omitempty"`
	LongTerm   []string `json:"long_term,omitempty"`
}

// Provider defines the interface for an advice provider.
type Provider interface {
	Advise(ctx context.Context, rec models.DiseaseRecord, confidence float64) (Advice, error)
}

// New selects a provider by name. An empty name falls back to the
// PHYTOSCAN_ADVISOR environment variable, then to the static provider.
func New(name string) Provider {
	if name == "" {
		name = os.Getenv("PHYTOSCAN_ADVISOR")
	}
	switch name {
	case "gemini":
		return &fallbackProvider{primary: &Gemini{}, backup: &Static{}}
	default:
		return &Static{}
	}
}

// fallbackProvider degrades to its backup when the primary fails, so a
// missing API key or a generation error never blocks the result view.
type fallbackProvider struct {
	primary Provider
	backup  Provider
}

func (f *fallbackProvider) Advise(ctx context.Context, rec models.DiseaseRecord, confidence float64) (Advice, error) {
	advice, err := f.primary.Advise(ctx, rec, confidence)
	if err == nil {
		return advice, nil
	}
	slog.Warn("Advice generation failed, using curated guidance", "error", err)
	return f.backup.Advise(ctx, rec, confidence)
}
