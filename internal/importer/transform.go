package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohanmehta-dev/spendbook/internal/expense"
	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

const (
	// defaultDescription fills in for rows with no description column.
	defaultDescription = "Imported Expense"
	// fallbackToken is resolved when a row offers no category signal at all.
	fallbackToken = "Others"
	// matrixNotes marks expenses synthesized from a matrix-shaped sheet.
	matrixNotes = "Imported via Matrix"
)

// transformList converts one list-mode row into an expense. Returns false
// when the row has no usable amount; a missing date or description only
// degrades to a default, never drops the row.
func transformList(row sheet.Row, sc schema, res *resolver, now time.Time) (expense.CreateParams, bool) {
	cents, ok := parseAmountCell(row.First(amountAliases...))
	if !ok || cents == 0 {
		return expense.CreateParams{}, false
	}

	// Debit/credit sign conventions vary per bank; only the magnitude is an
	// expense amount.
	if cents < 0 {
		cents = -cents
	}

	desc := row.First(descAliases...).String()
	if desc == "" {
		desc = defaultDescription
	}

	token := desc
	if sc.source == SourceColumn {
		token = row.Cell(sc.categoryHeader).String()
	}

	if token == "" {
		token = fallbackToken
	}

	r := res.resolve(token)

	// When an explicit category cell was normalized away to a differently
	// named existing category, keep the original bank text in the
	// description for auditability. A description that was itself the
	// category signal is never self-appended.
	if sc.source == SourceColumn && !r.isNew &&
		!strings.EqualFold(r.category.Name, token) &&
		!strings.Contains(strings.ToLower(desc), strings.ToLower(token)) {
		desc = fmt.Sprintf("%s (%s)", desc, token)
	}

	return expense.CreateParams{
		Amount:      cents,
		Description: desc,
		Notes:       row.First(notesAliases...).String(),
		CategoryID:  r.category.ID,
		Date:        parseDate(row.First(dateAliases...), now),
	}, true
}

// transformMatrix converts one matrix-mode row into up to one expense per
// category column. Summary rows ("Total", "Final balance") are skipped
// entirely, as are cells that are empty, non-numeric, or not positive.
func transformMatrix(row sheet.Row, sc schema, res *resolver, now time.Time) []expense.CreateParams {
	dateCell := row.Cell(sc.dateHeader)

	dateText := strings.ToLower(dateCell.String())
	if dateText == "" || strings.Contains(dateText, "total") || strings.Contains(dateText, "final") {
		return nil
	}

	date := parseDate(dateCell, now)

	var out []expense.CreateParams

	for _, header := range sc.matrixHeaders {
		cents, ok := parseAmountCell(row.Cell(header))
		if !ok || cents <= 0 {
			continue
		}

		token := strings.TrimSpace(header)
		r := res.resolve(token)

		desc := titleCase(token) + " Expense"
		if !r.isNew && !strings.EqualFold(r.category.Name, token) {
			desc = fmt.Sprintf("%s Expense (%s)", r.category.Name, token)
		}

		out = append(out, expense.CreateParams{
			Amount:      cents,
			Description: desc,
			Notes:       matrixNotes,
			CategoryID:  r.category.ID,
			Date:        date,
		})
	}

	return out
}
