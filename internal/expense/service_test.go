package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rohanmehta-dev/spendbook/internal/expense"
)

func TestService_BulkCreate(t *testing.T) {
	catID := uuid.New()

	type testCase struct {
		name      string
		params    []expense.CreateParams
		setupMock func(m *expense.MockRepository)
		wantErr   bool
		wantCount int
	}

	tests := []testCase{
		{
			name: "Success",
			params: []expense.CreateParams{
				{Amount: 50000, Description: "Kirana Store", CategoryID: catID, Date: time.Now()},
				{Amount: 20000, Description: "Swiggy Order", CategoryID: catID, Date: time.Now()},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpenses(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, exps []*expense.Expense) error {
						for _, exp := range exps {
							exp.ID = uuid.New()
						}
						return nil
					})
			},
			wantCount: 2,
		},
		{
			name: "RejectsZeroAmount",
			params: []expense.CreateParams{
				{Amount: 0, Description: "Broken", CategoryID: catID},
			},
			wantErr: true,
		},
		{
			name: "RejectsMissingCategory",
			params: []expense.CreateParams{
				{Amount: 100, Description: "Orphan"},
			},
			wantErr: true,
		},
		{
			name: "EmptyBatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.BulkCreate(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}
