package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/expense"
	"github.com/rohanmehta-dev/spendbook/internal/export"
)

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	food := category.Category{ID: uuid.New(), Name: "Food"}

	expRepo := expense.NewMockRepository(ctrl)
	expRepo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		Return([]*expense.Expense{
			{
				ID:          uuid.New(),
				Amount:      123456,
				Description: "Big Bazaar",
				Notes:       "monthly",
				CategoryID:  food.ID,
				Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	catRepo := category.NewMockRepository(ctrl)
	catRepo.EXPECT().
		ListCategories(gomock.Any()).
		Return([]category.Category{food}, nil)

	svc := export.NewService(expense.NewService(expRepo), category.NewService(catRepo))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, expense.ListFilter{}))

	want := "Date,Description,Category,Amount,Notes\n" +
		"2024-03-05,Big Bazaar,Food,1234.56,monthly\n"
	assert.Equal(t, want, buf.String())
}
