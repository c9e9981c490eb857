package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rohanmehta-dev/spendbook/internal/category"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: category.CreateParams{
				Name:  "Groceries",
				Color: "#22c55e",
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cat *category.Category) error {
						cat.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  category.CreateParams{Color: "#22c55e"},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: category.CreateParams{Name: "Travel"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Name, got.Name)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_Create_DefaultsColor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := category.NewService(repo)
	got, err := svc.Create(context.Background(), category.CreateParams{Name: "Rent"})
	require.NoError(t, err)

	assert.Contains(t, category.Palette[:], got.Color)
}

func TestService_BulkCreate_SkipsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call expected for an empty batch.
	repo := category.NewMockRepository(ctrl)

	svc := category.NewService(repo)
	require.NoError(t, svc.BulkCreate(context.Background(), nil))
}
