package classification

import (
	"strings"
	"sync"

	"github.com/Veraticus/jarwise/internal/model"
)

// learnKeyTokens is how many leading words of a description form a learned key.
const learnKeyTokens = 3

// LearnKey derives the override key for a description: its first three
// whitespace-separated words, lowercased.
func LearnKey(description string) string {
	fields := strings.Fields(strings.ToLower(description))
	if len(fields) > learnKeyTokens {
		fields = fields[:learnKeyTokens]
	}
	return strings.Join(fields, " ")
}

// normalize lowercases a description and collapses whitespace runs to one space.
func normalize(description string) string {
	return strings.Join(strings.Fields(strings.ToLower(description)), " ")
}

// LearnedTable holds user-confirmed overrides in insertion order. Lookups scan
// keys in that order and the first key contained in the description wins.
// It is safe for concurrent use; readers never block each other.
type LearnedTable struct {
	categories map[string]string
	keys       []string
	mu         sync.RWMutex
}

// NewLearnedTable creates a table seeded with overrides.
func NewLearnedTable(overrides []model.LearnedOverride) *LearnedTable {
	t := &LearnedTable{categories: make(map[string]string)}
	t.Replace(overrides)
	return t
}

// Replace discards all overrides and installs the given ones.
func (t *LearnedTable) Replace(overrides []model.LearnedOverride) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.categories = make(map[string]string, len(overrides))
	t.keys = t.keys[:0]
	for _, o := range overrides {
		t.setLocked(strings.ToLower(o.Key), o.Category)
	}
}

// Set inserts or overwrites an override. Overwriting keeps the key's position.
func (t *LearnedTable) Set(key, category string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setLocked(key, category)
}

func (t *LearnedTable) setLocked(key, category string) {
	if _, exists := t.categories[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.categories[key] = category
}

// Lookup returns the category of the first learned key found in lowerDesc.
func (t *LearnedTable) Lookup(lowerDesc string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, key := range t.keys {
		if strings.Contains(lowerDesc, key) {
			return t.categories[key], true
		}
	}
	return "", false
}

// Snapshot returns the overrides in insertion order.
func (t *LearnedTable) Snapshot() []model.LearnedOverride {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.LearnedOverride, 0, len(t.keys))
	for _, key := range t.keys {
		out = append(out, model.LearnedOverride{Key: key, Category: t.categories[key]})
	}
	return out
}
