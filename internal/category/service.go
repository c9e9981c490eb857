package category

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, cat *Category) error
	CreateCategories(ctx context.Context, cats []Category) error
	ListCategories(ctx context.Context) ([]Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Color    string
	IsCustom bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	color := params.Color
	if color == "" {
		color = RandomColor()
	}

	cat := &Category{
		Name:     params.Name,
		Color:    color,
		IsCustom: params.IsCustom,
	}

	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return cat, nil
}

// BulkCreate persists categories minted during an import. IDs are assigned
// by the import pipeline so expenses created in the same batch can
// reference them.
func (s *Service) BulkCreate(ctx context.Context, cats []Category) error {
	if len(cats) == 0 {
		return nil
	}

	if err := s.repo.CreateCategories(ctx, cats); err != nil {
		return fmt.Errorf("creating categories: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return cats, nil
}
