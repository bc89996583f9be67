package catalog

import (
	"testing"

	"github.com/phytoscan/phytoscan/internal/models"
)

func TestSearch(t *testing.T) {
	records := Fallback()

	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "default query returns everything in order",
			query:    NewQuery(),
			expected: []string{"tomato_early_blight", "tomato_late_blight", "corn_gray_leaf_spot", "apple_scab", "grape_black_rot", "healthy"},
		},
		{
			name:     "localized term",
			query:    Query{Term: "番茄", Category: models.CategoryAll, Severity: models.SeverityAll},
			expected: []string{"tomato_early_blight", "tomato_late_blight"},
		},
		{
			name:     "term matches canonical name case-insensitively",
			query:    Query{Term: "tomato", Category: models.CategoryAll, Severity: models.SeverityAll},
			expected: []string{"tomato_early_blight", "tomato_late_blight"},
		},
		{
			name:     "term matches pathogen",
			query:    Query{Term: "phytophthora", Category: models.CategoryAll, Severity: models.SeverityAll},
			expected: []string{"tomato_late_blight"},
		},
		{
			name:     "category filter alone",
			query:    Query{Category: models.CategoryOomycete, Severity: models.SeverityAll},
			expected: []string{"tomato_late_blight"},
		},
		{
			name:     "severity filter alone",
			query:    Query{Category: models.CategoryAll, Severity: models.SeveritySevere},
			expected: []string{"tomato_late_blight", "apple_scab", "grape_black_rot"},
		},
		{
			name:     "all three predicates conjoined",
			query:    Query{Term: "番茄", Category: models.CategoryOomycete, Severity: models.SeveritySevere},
			expected: []string{"tomato_late_blight"},
		},
		{
			name:     "conjunction can be empty",
			query:    Query{Term: "番茄", Category: models.CategoryHealthy, Severity: models.SeverityAll},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, count := Search(records, tt.query)
			if count != len(tt.expected) {
				t.Fatalf("Expected %d matches, got %d", len(tt.expected), count)
			}
			for i, rec := range matched {
				if rec.ID != tt.expected[i] {
					t.Errorf("Position %d: expected %s, got %s", i, tt.expected[i], rec.ID)
				}
			}
		})
	}
}

// The result set must equal the intersection of the three single-predicate
// filters, whatever the catalog.
func TestSearchIsConjunction(t *testing.T) {
	records := Fallback()
	query := Query{Term: "病", Category: models.CategoryFungal, Severity: models.SeveritySevere}

	byTerm, _ := Search(records, Query{Term: query.Term, Category: models.CategoryAll, Severity: models.SeverityAll})
	byCat, _ := Search(records, Query{Category: query.Category, Severity: models.SeverityAll})
	bySev, _ := Search(records, Query{Category: models.CategoryAll, Severity: query.Severity})

	inSet := func(set []models.DiseaseRecord, id string) bool {
		for _, rec := range set {
			if rec.ID == id {
				return true
			}
		}
		return false
	}

	combined, _ := Search(records, query)
	for _, rec := range records {
		want := inSet(byTerm, rec.ID) && inSet(byCat, rec.ID) && inSet(bySev, rec.ID)
		if got := inSet(combined, rec.ID); got != want {
			t.Errorf("Record %s: conjunction mismatch, got %v want %v", rec.ID, got, want)
		}
	}
}

func TestQueryReset(t *testing.T) {
	q := Query{Term: "番茄", Category: models.CategoryFungal, Severity: models.SeveritySevere}
	q.Reset()

	if q.Term != "" || q.Category != models.CategoryAll || q.Severity != models.SeverityAll {
		t.Errorf("Expected cleared query, got %+v", q)
	}

	records := Fallback()
	matched, count := Search(records, q)
	if count != len(records) {
		t.Fatalf("Reset query must return full catalog, got %d of %d", count, len(records))
	}
	for i, rec := range matched {
		if rec.ID != records[i].ID {
			t.Errorf("Order changed at %d: %s vs %s", i, rec.ID, records[i].ID)
		}
	}
}
