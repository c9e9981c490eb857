package importer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/importer"
)

func TestPreview_ListModeEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	csv := strings.Join([]string{
		"Date,Description,Amount",
		"2024-01-01,kirana store,500",
		"2024-01-02,swiggy order,-200",
		"2024-01-03,,0",
	}, "\n")

	classifier := importer.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), []string{"kirana store", "swiggy order"}, gomock.Any()).
		Return(importer.Classification{})

	svc := importer.NewService(classifier)

	result, err := svc.Preview(context.Background(), strings.NewReader(csv), "statement.csv", nil)
	require.NoError(t, err)

	// The zero-amount row is dropped; the negative amount is kept as its
	// absolute value.
	require.Len(t, result.Expenses, 2)
	assert.Equal(t, int64(50000), result.Expenses[0].Amount)
	assert.Equal(t, int64(20000), result.Expenses[1].Amount)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), result.Expenses[1].Date)

	require.Len(t, result.NewCategories, 2)
	assert.Equal(t, "Kirana Store", result.NewCategories[0].Name)
	assert.Equal(t, "Swiggy Order", result.NewCategories[1].Name)

	assertCategoryInvariant(t, result, nil)
}

func TestPreview_MatrixModeEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	csv := strings.Join([]string{
		`Date,Food,Travel,Grand Total,Notes`,
		`05-03-2024,"1,200",0,"1,200",weekly`,
		`06-03-2024,300,450,750,`,
		`Total,"1,500",450,"1,950",`,
	}, "\n")

	classifier := importer.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), []string{"Food", "Travel"}, gomock.Any()).
		Return(importer.Classification{})

	svc := importer.NewService(classifier)

	result, err := svc.Preview(context.Background(), strings.NewReader(csv), "matrix.csv", nil)
	require.NoError(t, err)

	// Row 1 has one positive cell, row 2 has two, the Total row is skipped.
	require.Len(t, result.Expenses, 3)
	assert.Equal(t, int64(120000), result.Expenses[0].Amount)
	assert.Equal(t, "Food Expense", result.Expenses[0].Description)
	assert.Equal(t, "Imported via Matrix", result.Expenses[0].Notes)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), result.Expenses[0].Date)

	require.Len(t, result.NewCategories, 2)
	assertCategoryInvariant(t, result, nil)
}

func TestPreview_ClassifierMapsToExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := []category.Category{
		{ID: uuid.New(), Name: "Food"},
	}

	csv := "Date,Description,Amount\n2024-01-01,swiggy order,250\n"

	classifier := importer.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), existing).
		Return(importer.Classification{Mapping: map[string]string{
			"swiggy order": existing[0].ID.String(),
		}})

	svc := importer.NewService(classifier)

	result, err := svc.Preview(context.Background(), strings.NewReader(csv), "s.csv", existing)
	require.NoError(t, err)

	require.Len(t, result.Expenses, 1)
	assert.Equal(t, existing[0].ID, result.Expenses[0].CategoryID)
	assert.Empty(t, result.NewCategories)
}

func TestPreview_ClassifierFailureStillResolvesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	csv := strings.Join([]string{
		"Date,Description,Amount",
		"2024-01-01,kirana store,500",
		"2024-01-02,KIRANA STORE,300",
		"2024-01-03,petrol pump,900",
	}, "\n")

	classifier := importer.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(importer.Classification{Failed: true})

	svc := importer.NewService(classifier)

	result, err := svc.Preview(context.Background(), strings.NewReader(csv), "s.csv", nil)
	require.NoError(t, err)

	require.Len(t, result.Expenses, 3)
	// Case-insensitive repeats of a token share one minted category.
	assert.Equal(t, result.Expenses[0].CategoryID, result.Expenses[1].CategoryID)
	require.Len(t, result.NewCategories, 2)

	assertCategoryInvariant(t, result, nil)
}

func TestPreview_EmptySheetShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No data rows: the classifier must never be called.
	classifier := importer.NewMockClassifier(ctrl)

	svc := importer.NewService(classifier)

	result, err := svc.Preview(context.Background(), strings.NewReader("Date,Description,Amount\n"), "empty.csv", nil)
	require.NoError(t, err)

	assert.Empty(t, result.Expenses)
	assert.Empty(t, result.NewCategories)
}

// assertCategoryInvariant checks that every expense references a category
// from the existing set or from the batch's new categories.
func assertCategoryInvariant(t *testing.T, result importer.Result, existing []category.Category) {
	t.Helper()

	known := make(map[uuid.UUID]bool)
	for _, cat := range existing {
		known[cat.ID] = true
	}

	for _, cat := range result.NewCategories {
		known[cat.ID] = true
	}

	for _, exp := range result.Expenses {
		assert.True(t, known[exp.CategoryID], "expense %q references unknown category", exp.Description)
	}
}
