package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/shopspring/decimal"
)

// SaveJar creates or replaces a jar by name. Current is clamped to the target.
func (s *SQLiteStorage) SaveJar(ctx context.Context, jar model.Jar) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := jar.Validate(); err != nil {
		return err
	}

	jar = jar.Clamped()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jars (name, target, current, priority, color, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			target = excluded.target,
			current = excluded.current,
			priority = excluded.priority,
			color = excluded.color,
			updated_at = CURRENT_TIMESTAMP
	`, jar.Name, jar.Target.String(), jar.Current.String(), jar.Priority, jar.Color)
	if err != nil {
		return fmt.Errorf("failed to save jar %s: %w", jar.Name, err)
	}
	return nil
}

// GetJars returns all jars, most urgent first.
func (s *SQLiteStorage) GetJars(ctx context.Context) ([]model.Jar, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, target, current, priority, color
		FROM jars
		ORDER BY priority, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jars: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jars []model.Jar
	for rows.Next() {
		jar, err := scanJar(rows)
		if err != nil {
			return nil, err
		}
		jars = append(jars, jar)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jars: %w", err)
	}
	return jars, nil
}

// GetJar retrieves a jar by name.
func (s *SQLiteStorage) GetJar(ctx context.Context, name string) (*model.Jar, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT name, target, current, priority, color FROM jars WHERE name = ?
	`, name)
	jar, err := scanJar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("jar %s: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &jar, nil
}

// DeleteJar removes a jar by name.
func (s *SQLiteStorage) DeleteJar(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM jars WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete jar %s: %w", name, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("jar %s: %w", name, common.ErrNotFound)
	}
	return nil
}

func scanJar(row rowScanner) (model.Jar, error) {
	var (
		jar             model.Jar
		target, current string
	)

	if err := row.Scan(&jar.Name, &target, &current, &jar.Priority, &jar.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Jar{}, err
		}
		return model.Jar{}, fmt.Errorf("failed to scan jar: %w", err)
	}

	var err error
	if jar.Target, err = decimal.NewFromString(target); err != nil {
		return model.Jar{}, fmt.Errorf("jar %s has malformed target %q: %w", jar.Name, target, err)
	}
	if jar.Current, err = decimal.NewFromString(current); err != nil {
		return model.Jar{}, fmt.Errorf("jar %s has malformed current %q: %w", jar.Name, current, err)
	}
	return jar, nil
}
