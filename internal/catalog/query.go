package catalog

import (
	"strings"

	"github.com/phytoscan/phytoscan/internal/models"
)

// Query is the transient filter state for a catalog view: a free-text
// term plus category and severity filters.
type Query struct {
	Term     string
	Category models.Category
	Severity models.Severity
}

// NewQuery returns the default, match-everything query.
func NewQuery() Query {
	return Query{Category: models.CategoryAll, Severity: models.SeverityAll}
}

// Reset clears all three filters in a single assignment.
func (q *Query) Reset() {
	*q = NewQuery()
}

// Matches reports whether a record satisfies all three predicates. The
// term matches case-insensitively against the localized name, the
// canonical name, and the pathogen descriptor; an empty term matches all.
func (q Query) Matches(rec models.DiseaseRecord) bool {
	if q.Category != models.CategoryAll && rec.Category != q.Category {
		return false
	}
	if q.Severity != models.SeverityAll && rec.Severity != q.Severity {
		return false
	}
	term := strings.ToLower(q.Term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.NameZH), term) ||
		strings.Contains(strings.ToLower(rec.NameEN), term) ||
		strings.Contains(strings.ToLower(rec.Pathogen), term)
}

// Search filters the record set, preserving catalog order, and returns the
// matches with their count. It never mutates its input, so a loaded
// catalog can be queried concurrently without locking.
func Search(records []models.DiseaseRecord, q Query) ([]models.DiseaseRecord, int) {
	matched := make([]models.DiseaseRecord, 0, len(records))
	for _, rec := range records {
		if q.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, len(matched)
}
