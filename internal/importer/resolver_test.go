package importer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanmehta-dev/spendbook/internal/category"
)

func existingCategories() []category.Category {
	return []category.Category{
		{ID: uuid.New(), Name: "Food", Color: "#ef4444"},
		{ID: uuid.New(), Name: "Travel", Color: "#3b82f6"},
	}
}

func TestResolver_ClassifierMappingWins(t *testing.T) {
	existing := existingCategories()
	cls := Classification{Mapping: map[string]string{
		"swiggy order": existing[0].ID.String(),
	}}

	r := newResolver(existing, cls)
	res := r.resolve("swiggy order")

	assert.False(t, res.isNew)
	assert.Equal(t, existing[0].ID, res.category.ID)
	assert.Empty(t, r.created)
}

func TestResolver_ClassifierLowerCaseLookup(t *testing.T) {
	existing := existingCategories()
	cls := Classification{Mapping: map[string]string{
		"swiggy order": existing[0].ID.String(),
	}}

	r := newResolver(existing, cls)
	res := r.resolve("Swiggy Order")

	assert.False(t, res.isNew)
	assert.Equal(t, existing[0].ID, res.category.ID)
}

func TestResolver_IgnoresUnknownMappedID(t *testing.T) {
	existing := existingCategories()
	cls := Classification{Mapping: map[string]string{
		"swiggy order": uuid.NewString(), // not in the existing set
		"weird":        "not-even-a-uuid",
	}}

	r := newResolver(existing, cls)

	res := r.resolve("swiggy order")
	assert.True(t, res.isNew)
	assert.Equal(t, "Swiggy Order", res.category.Name)

	res = r.resolve("weird")
	assert.True(t, res.isNew)
}

func TestResolver_SentinelNewMints(t *testing.T) {
	existing := existingCategories()
	cls := Classification{Mapping: map[string]string{"groceries": SentinelNew}}

	r := newResolver(existing, cls)
	res := r.resolve("groceries")

	require.True(t, res.isNew)
	assert.Equal(t, "Groceries", res.category.Name)
	assert.True(t, res.category.IsCustom)
	assert.Contains(t, category.Palette[:], res.category.Color)
}

func TestResolver_ExactNameMatch(t *testing.T) {
	existing := existingCategories()

	r := newResolver(existing, Classification{})
	res := r.resolve("  fOoD ")

	assert.False(t, res.isNew)
	assert.Equal(t, existing[0].ID, res.category.ID)
	assert.Empty(t, r.created)
}

func TestResolver_MemoizesByLowerCasedToken(t *testing.T) {
	r := newResolver(nil, Classification{})

	first := r.resolve("kirana store")
	second := r.resolve("KIRANA STORE")
	third := r.resolve("Kirana Store")

	assert.Equal(t, first.category.ID, second.category.ID)
	assert.Equal(t, first.category.ID, third.category.ID)
	require.Len(t, r.created, 1, "one token must mint exactly one category")
	assert.True(t, second.isNew)
}

func TestResolver_EmptyNameFallsBack(t *testing.T) {
	r := newResolver(nil, Classification{})

	res := r.resolve("   ")
	assert.True(t, res.isNew)
	assert.Equal(t, "Imported Misc", res.category.Name)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Swiggy Order", titleCase("SWIGGY ORDER"))
	assert.Equal(t, "Kirana Store", titleCase("kirana store"))
	assert.Equal(t, "Food", titleCase("fOoD"))
}
