package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/expense"
)

// Service writes stored expenses out as CSV, the inverse of the importer.
type Service struct {
	expenses   *expense.Service
	categories *category.Service
}

func NewService(expenses *expense.Service, categories *category.Service) *Service {
	return &Service{
		expenses:   expenses,
		categories: categories,
	}
}

var header = []string{"Date", "Description", "Category", "Amount", "Notes"}

// WriteCSV streams all expenses matching the filter to w. Amounts are
// rendered in currency units with two decimals, dates as YYYY-MM-DD.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter expense.ListFilter) error {
	exps, err := s.expenses.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	names := make(map[string]string, len(cats))
	for _, cat := range cats {
		names[cat.ID.String()] = cat.Name
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, exp := range exps {
		amount := decimal.NewFromInt(exp.Amount).Div(decimal.NewFromInt(100))

		record := []string{
			exp.Date.Format("2006-01-02"),
			exp.Description,
			names[exp.CategoryID.String()],
			amount.StringFixed(2),
			exp.Notes,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing expense %s: %w", exp.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
