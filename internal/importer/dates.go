package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

// dayFirstRe matches D-M-YYYY and DD/MM/YYYY style values. These are
// parsed day-first explicitly: generic parsing would read "05-03-2024" as
// May 3rd, which is wrong for the exports this importer sees.
var dayFirstRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)

// genericLayouts are tried, in order, for anything the day-first rule does
// not cover.
var genericLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"January 2, 2006",
}

// Excel serial numbers for dates between 1954 and 2119. Plain numbers in a
// date cell outside this window are treated as garbage, not dates.
const (
	serialMin = 20000
	serialMax = 80000
)

// parseDate reads a cell as a calendar date. An unparseable or empty value
// falls back to now's date rather than failing the row.
func parseDate(c sheet.Cell, now time.Time) time.Time {
	switch c.Kind {
	case sheet.KindTime:
		return dateOnly(c.Time)
	case sheet.KindNumber:
		if t, ok := fromSerial(c.Number); ok {
			return t
		}
	case sheet.KindString:
		if t, ok := parseDateString(strings.TrimSpace(c.Text)); ok {
			return t
		}
	}

	return dateOnly(now)
}

func parseDateString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		if t, ok := civilDate(year, month, day); ok {
			return t, true
		}

		return time.Time{}, false
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(f)
	}

	return time.Time{}, false
}

func fromSerial(f float64) (time.Time, bool) {
	if f < serialMin || f > serialMax {
		return time.Time{}, false
	}

	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return time.Time{}, false
	}

	return dateOnly(t), true
}

// civilDate builds a date and rejects values that only exist through
// normalization (like 31-02-2024).
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}

	return t, true
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
