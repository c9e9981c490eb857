package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpenses(ctx context.Context, exps []*Expense) error
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries one normalized expense produced by an import, before
// it is persisted.
type CreateParams struct {
	Amount      int64
	Description string
	Notes       string
	CategoryID  uuid.UUID
	Date        time.Time
}

type ListFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// BulkCreate persists a batch of expenses from a confirmed import.
// Entries with a non-positive amount or no category are rejected up front
// so a bad payload cannot corrupt the ledger.
func (s *Service) BulkCreate(ctx context.Context, params []CreateParams) ([]*Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	exps := make([]*Expense, 0, len(params))

	for i, p := range params {
		if p.Amount <= 0 {
			return nil, fmt.Errorf("expense %d: amount must be positive", i)
		}

		if p.CategoryID == uuid.Nil {
			return nil, fmt.Errorf("expense %d: category is required", i)
		}

		exps = append(exps, &Expense{
			Amount:      p.Amount,
			Description: p.Description,
			Notes:       p.Notes,
			CategoryID:  p.CategoryID,
			Date:        p.Date,
		})
	}

	if err := s.repo.CreateExpenses(ctx, exps); err != nil {
		return nil, fmt.Errorf("creating expenses: %w", err)
	}

	return exps, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	exps, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return exps, nil
}
