package classification

import (
	"context"
	"sync"

	"github.com/Veraticus/jarwise/internal/model"
)

// MemoryStore is a TableStore that keeps the table in process memory.
type MemoryStore struct {
	overrides []model.LearnedOverride
	saves     int
	mu        sync.Mutex
}

// NewMemoryStore creates a store pre-populated with overrides.
func NewMemoryStore(overrides ...model.LearnedOverride) *MemoryStore {
	return &MemoryStore{overrides: append([]model.LearnedOverride(nil), overrides...)}
}

// LoadLearned returns a copy of the stored overrides.
func (m *MemoryStore) LoadLearned(_ context.Context) ([]model.LearnedOverride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.LearnedOverride(nil), m.overrides...), nil
}

// SaveLearned replaces the stored overrides.
func (m *MemoryStore) SaveLearned(_ context.Context, overrides []model.LearnedOverride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides = append([]model.LearnedOverride(nil), overrides...)
	m.saves++
	return nil
}

// Saves reports how many times the table was persisted.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
