package session

import (
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/models"
)

// DemoResult synthesizes the fixed diagnostic result used whenever the
// remote classifier cannot answer. Deterministic on purpose: the demo
// always diagnoses tomato early blight with the same confidences, and the
// result is tagged demo-fallback so the UI can disclose it.
func DemoResult() models.DiagnosticResult {
	top3 := []models.Prediction{
		{
			Class:       "Tomato___Early_blight",
			DiseaseID:   "tomato_early_blight",
			DiseaseName: "番茄早疫病",
			Confidence:  0.872,
			Severity:    models.SeverityModerate,
		},
		{
			Class:       "Tomato___Late_blight",
			DiseaseID:   "tomato_late_blight",
			DiseaseName: "番茄晚疫病",
			Confidence:  0.094,
			Severity:    models.SeveritySevere,
		},
		{
			Class:       "Healthy",
			DiseaseID:   "healthy",
			DiseaseName: "健康植物",
			Confidence:  0.034,
			Severity:    models.SeverityNone,
		},
	}

	res := models.DiagnosticResult{
		Mode:       models.ModeDemoFallback,
		ElapsedSec: 1.83,
		Primary:    top3[0],
		Top3:       top3,
		Distribution: []models.DistributionPoint{
			{Label: "番茄早疫病", Value: 87.2},
			{Label: "番茄晚疫病", Value: 9.4},
			{Label: "健康植物", Value: 3.4},
		},
	}

	if detail, ok := catalog.FallbackDetail("tomato_early_blight"); ok {
		res.Detail = &detail
	}
	return res
}
