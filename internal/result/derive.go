// Package result computes the derived display values for a diagnostic
// result: risk tier, synthetic symptom-match estimates, and the
// chart-ready probability distribution.
package result

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/phytoscan/phytoscan/internal/models"
)

// RiskTier is the qualitative risk badge derived from severity.
type RiskTier string

const (
	TierHigh RiskTier = "high"
	TierMid  RiskTier = "mid"
	TierLow  RiskTier = "low"
)

// Risk maps severity to a display tier. The mapping is fixed: severe is
// high, moderate is mid, everything else (including moderate-severe and
// none) is low. It deliberately ignores the model's confidence.
func Risk(severity models.Severity) RiskTier {
	switch severity {
	case models.SeveritySevere:
		return TierHigh
	case models.SeverityModerate:
		return TierMid
	default:
		return TierLow
	}
}

// BarWidth is the quantitative bar percentage paired with the badge.
func (t RiskTier) BarWidth() int {
	switch t {
	case TierHigh:
		return 90
	case TierMid:
		return 55
	default:
		return 15
	}
}

// Label is the localized badge text.
func (t RiskTier) Label() string {
	switch t {
	case TierHigh:
		return "高風險"
	case TierMid:
		return "中風險"
	default:
		return "低風險"
	}
}

// SymptomMatch pairs one listed symptom with its synthetic match estimate.
type SymptomMatch struct {
	Symptom string
	Percent float64
}

// SymptomMatches estimates a match percentage for up to four listed
// symptoms: max(60, confidence% − 4i) for the symptom at position i. This
// is a presentation heuristic, not a model output.
func SymptomMatches(confidence float64, symptoms []string) []SymptomMatch {
	if len(symptoms) > 4 {
		symptoms = symptoms[:4]
	}
	matches := make([]SymptomMatch, 0, len(symptoms))
	for i, symptom := range symptoms {
		matches = append(matches, SymptomMatch{
			Symptom: symptom,
			Percent: math.Max(60, confidence*100-float64(4*i)),
		})
	}
	return matches
}

// Finalize enforces the result invariants in place: top3 sorted by
// confidence descending and capped at three entries, primary equal to
// top3[0], and the distribution rebuilt from the top3 confidences scaled
// to sum 100.
func Finalize(res *models.DiagnosticResult) {
	if len(res.Top3) == 0 {
		res.Top3 = []models.Prediction{res.Primary}
	}
	sort.SliceStable(res.Top3, func(i, j int) bool {
		return res.Top3[i].Confidence > res.Top3[j].Confidence
	})
	if len(res.Top3) > 3 {
		res.Top3 = res.Top3[:3]
	}
	res.Primary = res.Top3[0]
	res.Distribution = Distribution(res.Top3)
}

// Distribution converts ranked predictions into percentage points summing
// to ~100, one per prediction, rounded to a tenth.
func Distribution(predictions []models.Prediction) []models.DistributionPoint {
	confidences := make([]float64, len(predictions))
	for i, p := range predictions {
		confidences[i] = p.Confidence
	}

	total := floats.Sum(confidences)
	if total <= 0 {
		total = 1
	}

	points := make([]models.DistributionPoint, len(predictions))
	for i, p := range predictions {
		label := p.DiseaseName
		if label == "" {
			label = p.Class
		}
		points[i] = models.DistributionPoint{
			Label: label,
			Value: math.Round(confidences[i]/total*1000) / 10,
		}
	}
	return points
}
