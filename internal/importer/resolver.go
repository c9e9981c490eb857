package importer

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rohanmehta-dev/spendbook/internal/category"
)

// fallbackCategoryName is used when a token title-cases to nothing.
const fallbackCategoryName = "Imported Misc"

// resolution is the outcome of resolving one raw token.
type resolution struct {
	category category.Category
	isNew    bool
}

// resolver maps raw category tokens to categories for the duration of one
// import call. Resolution is memoized by lower-cased token, so the same
// token never mints two categories within a batch.
//
// Order of precedence: classifier mapping (validated against the known
// category set), session memo, exact name match, then minting a new
// category.
type resolver struct {
	byID    map[uuid.UUID]category.Category
	byName  map[string]category.Category
	mapping map[string]string
	memo    map[string]resolution
	created []category.Category
}

func newResolver(existing []category.Category, cls Classification) *resolver {
	r := &resolver{
		byID:    make(map[uuid.UUID]category.Category, len(existing)),
		byName:  make(map[string]category.Category, len(existing)),
		mapping: cls.Mapping,
		memo:    make(map[string]resolution),
	}

	for _, cat := range existing {
		r.byID[cat.ID] = cat
		r.byName[strings.ToLower(strings.TrimSpace(cat.Name))] = cat
	}

	return r
}

func (r *resolver) resolve(token string) resolution {
	key := strings.ToLower(strings.TrimSpace(token))

	if res, ok := r.memo[key]; ok {
		return res
	}

	res := r.resolveFresh(token, key)
	r.memo[key] = res

	return res
}

func (r *resolver) resolveFresh(token, key string) resolution {
	// The classifier's answer is a hint, not an authority: it only counts
	// when it names a category we actually know.
	if cat, ok := r.classified(token); ok {
		return resolution{category: cat}
	}

	if cat, ok := r.byName[key]; ok {
		return resolution{category: cat}
	}

	return resolution{category: r.mint(token), isNew: true}
}

// classified looks the token up in the classifier mapping, trying the token
// as given, trimmed, then lower-cased. SentinelNew and unknown IDs mean
// "no usable mapping".
func (r *resolver) classified(token string) (category.Category, bool) {
	for _, variant := range []string{token, strings.TrimSpace(token), strings.ToLower(token)} {
		mapped, ok := r.mapping[variant]
		if !ok || mapped == SentinelNew {
			continue
		}

		id, err := uuid.Parse(mapped)
		if err != nil {
			continue
		}

		if cat, ok := r.byID[id]; ok {
			return cat, true
		}
	}

	return category.Category{}, false
}

func (r *resolver) mint(token string) category.Category {
	name := titleCase(strings.TrimSpace(token))
	if name == "" {
		name = fallbackCategoryName
	}

	cat := category.Category{
		ID:       uuid.New(),
		Name:     name,
		Color:    category.RandomColor(),
		IsCustom: true,
	}

	r.created = append(r.created, cat)

	return cat
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
