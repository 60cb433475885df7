// Package classification maps free-text transaction descriptions onto categories.
//
// Classification checks user-learned overrides first, then a keyword rule table,
// and falls back to "Other". Learned overrides are persisted through a TableStore.
package classification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/jarwise/internal/model"
)

// Confidence levels with fixed meaning.
const (
	LearnedConfidence  = 1.0
	FallbackConfidence = 0.3
)

// ErrEmptyDescription is returned when learning from a description with no words.
var ErrEmptyDescription = errors.New("description has no words to learn from")

// TableStore persists the learned-override table.
type TableStore interface {
	LoadLearned(ctx context.Context) ([]model.LearnedOverride, error)
	SaveLearned(ctx context.Context, overrides []model.LearnedOverride) error
}

// Classifier assigns categories to descriptions.
type Classifier struct {
	store   TableStore
	learned *LearnedTable
	rules   []model.CategoryRule
}

// New creates a classifier over rules. A nil store keeps learned overrides in memory only.
func New(rules []model.CategoryRule, store TableStore) *Classifier {
	normalized := make([]model.CategoryRule, len(rules))
	for i, rule := range rules {
		keywords := make([]string, len(rule.Keywords))
		for j, kw := range rule.Keywords {
			keywords[j] = normalize(kw)
		}
		rule.Keywords = keywords
		normalized[i] = rule
	}

	return &Classifier{
		rules:   normalized,
		learned: NewLearnedTable(nil),
		store:   store,
	}
}

// Load replaces the learned table with the persisted one.
func (c *Classifier) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	overrides, err := c.store.LoadLearned(ctx)
	if err != nil {
		return fmt.Errorf("failed to load learned categories: %w", err)
	}
	c.learned.Replace(overrides)
	return nil
}

// Classify returns the best category guess for a description. Runs of
// whitespace count as a single space, matching how learned keys are built.
func (c *Classifier) Classify(description string) model.Classification {
	lowerDesc := normalize(description)

	if category, ok := c.learned.Lookup(lowerDesc); ok {
		return model.Classification{Category: category, Confidence: LearnedConfidence}
	}

	best := model.Classification{Category: model.CategoryOther, Confidence: FallbackConfidence}
	for _, rule := range c.rules {
		if rule.Confidence <= best.Confidence {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lowerDesc, kw) {
				best = model.Classification{Category: rule.Category, Confidence: rule.Confidence}
				break
			}
		}
	}

	return best
}

// Learn records category as the override for the description's first three words
// and persists the whole table.
func (c *Classifier) Learn(ctx context.Context, description, category string) error {
	key := LearnKey(description)
	if key == "" {
		return ErrEmptyDescription
	}

	if c.store == nil {
		c.learned.Set(key, category)
		return nil
	}

	previous := c.learned.Snapshot()
	c.learned.Set(key, category)
	if err := c.store.SaveLearned(ctx, c.learned.Snapshot()); err != nil {
		c.learned.Replace(previous)
		return fmt.Errorf("failed to save learned category %q: %w", key, err)
	}
	return nil
}

// Learned returns the current overrides in lookup order.
func (c *Classifier) Learned() []model.LearnedOverride {
	return c.learned.Snapshot()
}

// RuleCount returns the number of static rules.
func (c *Classifier) RuleCount() int {
	return len(c.rules)
}
