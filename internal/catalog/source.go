package catalog

import (
	"context"
	"log/slog"

	"github.com/phytoscan/phytoscan/internal/models"
)

// Source produces the normalized catalog. Consumers never learn whether
// records came from the remote service, a local dataset file, or the
// built-in fallback set.
type Source interface {
	Diseases(ctx context.Context) ([]models.DiseaseRecord, error)
}

// StaticSource serves the built-in fallback catalog.
type StaticSource struct{}

func (StaticSource) Diseases(context.Context) ([]models.DiseaseRecord, error) {
	return Fallback(), nil
}

// Load fetches the catalog from a source, degrading to the built-in
// fallback set with a warning instead of failing. Catalog-load errors are
// never surfaced as blocking errors.
func Load(ctx context.Context, src Source) []models.DiseaseRecord {
	records, err := src.Diseases(ctx)
	if err != nil {
		slog.Warn("Catalog unavailable, using built-in fallback set", "error", err)
		return Fallback()
	}
	return records
}
