// Package storage holds completed diagnostic outcomes for the serve
// facade. In-memory only: uploaded images and results never outlive the
// process.
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phytoscan/phytoscan/internal/models"
)

// StoredResult is one completed diagnostic session kept for retrieval.
type StoredResult struct {
	ID        string                  `json:"id"`
	Filename  string                  `json:"filename"`
	Preview   string                  `json:"preview,omitempty"`
	Result    models.DiagnosticResult `json:"result"`
	CreatedAt time.Time               `json:"created_at"`
}

// ResultStore is a uuid-keyed in-memory store, safe for concurrent use.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]*StoredResult
	order   []string
}

// New creates an empty store.
func New() *ResultStore {
	return &ResultStore{
		results: make(map[string]*StoredResult),
	}
}

// Add stores a result under a fresh id and returns the stored form.
func (s *ResultStore) Add(filename, preview string, result models.DiagnosticResult) *StoredResult {
	stored := &StoredResult{
		ID:        uuid.NewString(),
		Filename:  filename,
		Preview:   preview,
		Result:    result,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored
}

// Get retrieves one stored result.
func (s *ResultStore) Get(id string) (*StoredResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, exists := s.results[id]
	return stored, exists
}

// All returns stored results in insertion order.
func (s *ResultStore) All() []*StoredResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*StoredResult, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.results[id])
	}
	return all
}

// Delete removes one stored result.
func (s *ResultStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[id]; !exists {
		return
	}
	delete(s.results, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
