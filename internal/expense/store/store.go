package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rohanmehta-dev/spendbook/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateExpenses(ctx context.Context, exps []*expense.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO expenses (amount, description, notes, category_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	for _, exp := range exps {
		err := tx.QueryRowContext(ctx, query,
			exp.Amount,
			exp.Description,
			exp.Notes,
			exp.CategoryID,
			exp.Date,
		).Scan(&exp.ID, &exp.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting expense %q: %w", exp.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing expenses: %w", err)
	}

	return nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `
		SELECT id, amount, description, notes, category_id, date, created_at
		FROM expenses
		WHERE 1=1
	`

	var args []any

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}

	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var exps []*expense.Expense

	for rows.Next() {
		var exp expense.Expense

		if err := rows.Scan(
			&exp.ID, &exp.Amount, &exp.Description, &exp.Notes,
			&exp.CategoryID, &exp.Date, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		exps = append(exps, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}

	return exps, nil
}
