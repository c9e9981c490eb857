package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rohanmehta-dev/spendbook/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, cat *category.Category) error {
	query := `
		INSERT INTO categories (name, color, is_custom, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cat.Name,
		cat.Color,
		cat.IsCustom,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

// CreateCategories inserts categories whose IDs were assigned upstream, so
// expenses persisted in the same batch can already reference them.
func (s *Store) CreateCategories(ctx context.Context, cats []category.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO categories (id, name, color, is_custom, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	for _, cat := range cats {
		if _, err := tx.ExecContext(ctx, query, cat.ID, cat.Name, cat.Color, cat.IsCustom); err != nil {
			return fmt.Errorf("inserting category %q: %w", cat.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing categories: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]category.Category, error) {
	query := `
		SELECT id, name, color, is_custom, created_at
		FROM categories
		ORDER BY created_at, name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category

	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Color, &cat.IsCustom, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}
