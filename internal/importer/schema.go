package importer

import (
	"regexp"
	"strings"

	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

var (
	dateHeaderRe     = regexp.MustCompile(`(?i)^(date|dt|when|day)$`)
	amountHeaderRe   = regexp.MustCompile(`(?i)^(amount|amt|price|cost|debit|spending|value)$`)
	categoryHeaderRe = regexp.MustCompile(`(?i)^(category|cat|type|expense type)$`)
)

// matrixIgnore lists headers that are summaries or free text, never a
// category column, in matrix mode. Anything containing "total" is also
// ignored ("Grand Total", "Total Spend", ...).
var matrixIgnore = map[string]bool{
	"total": true, "final": true, "subtotal": true, "sum": true,
	"notes": true, "comments": true, "description": true,
}

// genericTerms are payment-rail words that bank exports love to put in a
// "category" column. A column dominated by these carries no spending
// signal and gets rejected by the quality check.
var genericTerms = map[string]bool{
	"debit": true, "credit": true, "dr": true, "cr": true,
	"withdrawal": true, "deposit": true, "transfer": true,
	"upi": true, "pos": true, "atm": true, "card": true,
	"imps": true, "neft": true, "rtgs": true, "mbk": true,
	"mobile": true, "net": true, "banking": true,
	"txn": true, "transaction": true, "expense": true, "payment": true,
}

// Quality thresholds for the explicit category column. A column is rejected
// when more than half its distinct values are generic payment terms, or
// when it has fewer than 3 distinct values across more than 5 rows.
const (
	genericRatioLimit  = 0.5
	minDistinctValues  = 3
	minRowsForDistinct = 5
)

// schema is the detected shape of one sheet.
type schema struct {
	mode           Mode
	source         Source
	dateHeader     string
	categoryHeader string
	matrixHeaders  []string
}

// detectSchema inspects headers and rows to decide how the sheet should be
// read. Matrix mode triggers only when there is a date column, no amount
// column, and enough remaining columns to plausibly be categories.
func detectSchema(sh *sheet.Sheet) schema {
	var sc schema

	hasAmount := false

	for _, h := range sh.Headers {
		trimmed := strings.TrimSpace(h)

		if sc.dateHeader == "" && dateHeaderRe.MatchString(trimmed) {
			sc.dateHeader = h
		}

		if amountHeaderRe.MatchString(trimmed) {
			hasAmount = true
		}
	}

	if sc.dateHeader != "" && !hasAmount && len(sh.Headers) > 2 {
		sc.mode = ModeMatrix
		sc.matrixHeaders = matrixCategoryHeaders(sh.Headers, sc.dateHeader)

		return sc
	}

	sc.mode = ModeList
	sc.source = SourceDescription

	if h, ok := findCategoryColumn(sh); ok {
		sc.source = SourceColumn
		sc.categoryHeader = h
	}

	return sc
}

// matrixCategoryHeaders returns every header that can act as a category
// column: everything except the date column and summary/free-text headers.
func matrixCategoryHeaders(headers []string, dateHeader string) []string {
	var out []string

	for _, h := range headers {
		if h == dateHeader {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" || matrixIgnore[key] || strings.Contains(key, "total") {
			continue
		}

		out = append(out, h)
	}

	return out
}

// findCategoryColumn locates an explicit category column and runs the
// quality check on its values. Returns false when the column is missing or
// too weak a signal, in which case the description column takes over.
func findCategoryColumn(sh *sheet.Sheet) (string, bool) {
	var header string

	for _, h := range sh.Headers {
		if categoryHeaderRe.MatchString(strings.TrimSpace(h)) {
			header = h
			break
		}
	}

	if header == "" {
		return "", false
	}

	distinct := make(map[string]bool)
	generic := 0

	for _, row := range sh.Rows {
		v := row.Cell(header).String()
		if v == "" {
			continue
		}

		key := strings.ToLower(v)
		if distinct[key] {
			continue
		}

		distinct[key] = true

		if genericTerms[key] {
			generic++
		}
	}

	if len(distinct) == 0 {
		return "", false
	}

	if float64(generic)/float64(len(distinct)) > genericRatioLimit {
		return "", false
	}

	if len(distinct) < minDistinctValues && len(sh.Rows) > minRowsForDistinct {
		return "", false
	}

	return header, true
}
