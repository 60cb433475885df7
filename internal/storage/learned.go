package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/jarwise/internal/model"
)

// LoadLearned returns the learned category overrides in the order they were learned.
func (s *SQLiteStorage) LoadLearned(ctx context.Context) ([]model.LearnedOverride, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, category FROM learned_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query learned categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var overrides []model.LearnedOverride
	for rows.Next() {
		var o model.LearnedOverride
		if err := rows.Scan(&o.Key, &o.Category); err != nil {
			return nil, fmt.Errorf("failed to scan learned category: %w", err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating learned categories: %w", err)
	}
	return overrides, nil
}

// SaveLearned replaces the stored overrides with the given table.
func (s *SQLiteStorage) SaveLearned(ctx context.Context, overrides []model.LearnedOverride) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateOverrides(overrides); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM learned_categories`); err != nil {
			return fmt.Errorf("failed to clear learned categories: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO learned_categories (position, key, category) VALUES (?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, o := range overrides {
			if _, err := stmt.ExecContext(ctx, i, o.Key, o.Category); err != nil {
				return fmt.Errorf("failed to save learned category %q: %w", o.Key, err)
			}
		}
		return nil
	})
}
