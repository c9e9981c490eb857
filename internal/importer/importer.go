// Package importer turns an arbitrary tabular bank export into normalized
// expenses. It infers the sheet shape (transaction list vs date×category
// matrix), picks the best category signal the sheet offers, and resolves
// every raw category token to an existing or newly minted category.
package importer

import (
	"context"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/expense"
)

// Mode is the inferred shape of the sheet.
type Mode int

const (
	// ModeList is one row per transaction with a single amount column.
	ModeList Mode = iota
	// ModeMatrix is one row per date with one amount column per category.
	ModeMatrix
)

// Source is where category tokens come from in list mode.
type Source int

const (
	// SourceColumn reads tokens from an explicit category column.
	SourceColumn Source = iota
	// SourceDescription falls back to the free-text description.
	SourceDescription
)

// SentinelNew is the classifier's marker for "no existing category fits".
const SentinelNew = "NEW"

// MaxClassifyTokens caps how many tokens a single classifier call may
// carry. Anything beyond the cap is silently dropped from the request and
// resolved by the local fallbacks instead.
const MaxClassifyTokens = 1000

// Classification is a best-effort mapping from raw token to an existing
// category ID or SentinelNew. Failed records that the classifier call
// itself broke; callers treat a failed result exactly like an empty one,
// the flag only feeds logging.
type Classification struct {
	Mapping map[string]string
	Failed  bool
}

// Classifier is the external semantic classifier. Implementations never
// return an error: any failure degrades to an empty Classification and the
// resolver's local fallbacks take over.
//
//go:generate mockgen -source=importer.go -destination=classifier_mock.go -package=importer
type Classifier interface {
	Classify(ctx context.Context, tokens []string, existing []category.Category) Classification
}

// Result is what one import call produces. Every CategoryID referenced by
// an expense is either in the caller's existing set or in NewCategories.
type Result struct {
	Expenses      []expense.CreateParams
	NewCategories []category.Category
}
