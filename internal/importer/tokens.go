package importer

import (
	"strings"

	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

// Header alias lists, in lookup priority order. Shared by token extraction
// and row transformation so both read the same columns.
var (
	descAliases   = []string{"description", "desc", "details", "particulars", "narration"}
	amountAliases = []string{"amount", "amt", "cost", "price", "debit", "spending", "value"}
	dateAliases   = []string{"date", "dt", "time", "when"}
	notesAliases  = []string{"notes", "remarks", "comment"}
)

// extractTokens collects the distinct raw category tokens the classifier
// should see, per the detected schema. Tokens are trimmed; single
// characters carry no signal and are dropped.
func extractTokens(sh *sheet.Sheet, sc schema) []string {
	var values []string

	switch {
	case sc.mode == ModeMatrix:
		values = sc.matrixHeaders
	case sc.source == SourceColumn:
		for _, row := range sh.Rows {
			values = append(values, row.Cell(sc.categoryHeader).String())
		}
	default:
		for _, row := range sh.Rows {
			values = append(values, row.First(descAliases...).String())
		}
	}

	seen := make(map[string]bool, len(values))

	var tokens []string

	for _, v := range values {
		token := strings.TrimSpace(v)
		if len(token) <= 1 || seen[token] {
			continue
		}

		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}
