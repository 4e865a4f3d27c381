package factsRepo

import (
	"context"
	"sync"

	"carelink/models"
)

// categoryOrder decides which category wins when a broadened query (no
// category filter) matches several facts for the same day.
var categoryOrder = []string{
	models.CategoryVitals,
	models.CategoryMedicalRecord,
	models.CategoryFood,
}

type memoryFactRepo struct {
	mu sync.RWMutex
	// user -> date -> category -> text
	facts map[string]map[string]map[string]string
}

// NewMemoryFactRepo returns an in-memory Repository preloaded with the
// given facts. Used when no MongoDB is configured, and in tests.
func NewMemoryFactRepo(facts []models.HealthFact) Repository {
	repo := &memoryFactRepo{
		facts: make(map[string]map[string]map[string]string),
	}
	for _, f := range facts {
		repo.add(f)
	}
	return repo
}

func (r *memoryFactRepo) add(f models.HealthFact) {
	byDate, ok := r.facts[f.UserID]
	if !ok {
		byDate = make(map[string]map[string]string)
		r.facts[f.UserID] = byDate
	}
	byCategory, ok := byDate[f.Date]
	if !ok {
		byCategory = make(map[string]string)
		byDate[f.Date] = byCategory
	}
	byCategory[f.Category] = f.Text
}

func (r *memoryFactRepo) Query(ctx context.Context, userID, date, category string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCategory, ok := r.facts[userID][date]
	if !ok {
		return "", ErrNotFound
	}
	if category != "" {
		text, ok := byCategory[category]
		if !ok {
			return "", ErrNotFound
		}
		return text, nil
	}
	for _, c := range categoryOrder {
		if text, ok := byCategory[c]; ok {
			return text, nil
		}
	}
	return "", ErrNotFound
}
