package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/jarwise/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidOverride  = errors.New("invalid learned override")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateOverrides checks every learned override has a key and a category.
func validateOverrides(overrides []model.LearnedOverride) error {
	seen := make(map[string]bool, len(overrides))
	for i, o := range overrides {
		if strings.TrimSpace(o.Key) == "" {
			return fmt.Errorf("%w: override at index %d has no key", ErrInvalidOverride, i)
		}
		if strings.TrimSpace(o.Category) == "" {
			return fmt.Errorf("%w: override %q has no category", ErrInvalidOverride, o.Key)
		}
		if seen[o.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidOverride, o.Key)
		}
		seen[o.Key] = true
	}
	return nil
}
