package model

import (
	"fmt"
	"strings"
)

// CategoryRule maps any of its keywords to a category with a fixed confidence.
type CategoryRule struct {
	Category   string   `json:"category" mapstructure:"category"`
	Keywords   []string `json:"keywords" mapstructure:"keywords"`
	Confidence float64  `json:"confidence" mapstructure:"confidence"`
}

// Validate ensures the rule can take part in classification.
func (r CategoryRule) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRule)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("%w: %s has no keywords", ErrInvalidRule, r.Category)
	}
	for i, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%w: %s keyword %d is blank", ErrInvalidRule, r.Category, i)
		}
	}
	if r.Confidence <= 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be in (0, 1], got %.2f", ErrInvalidRule, r.Confidence)
	}
	return nil
}

// LearnedOverride is a user-confirmed category keyed by a description prefix.
type LearnedOverride struct {
	Key      string
	Category string
}
