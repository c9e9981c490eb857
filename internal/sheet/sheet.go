// Package sheet decodes delimited and spreadsheet files into header-keyed
// rows. It knows nothing about expenses; it only answers "what value sits
// under this header in this row".
package sheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the value held by a Cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindTime
)

// Cell is one value from the source file. Spreadsheet cells can carry
// native numbers and dates, not just text, so the original type is kept
// until a consumer decides how to interpret it.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

func StringCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}

	return Cell{Kind: KindString, Text: s}
}

func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

func TimeCell(t time.Time) Cell {
	return Cell{Kind: KindTime, Time: t}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String renders the cell as trimmed text, whatever its kind.
func (c Cell) String() string {
	switch c.Kind {
	case KindString:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindTime:
		return c.Time.Format("2006-01-02")
	default:
		return ""
	}
}

// Row maps headers to cells. Header lookup is case-insensitive and ignores
// surrounding whitespace.
type Row struct {
	cells map[string]Cell
}

// NewRow builds a row from header-keyed cells.
func NewRow(cells map[string]Cell) Row {
	indexed := make(map[string]Cell, len(cells))
	for header, cell := range cells {
		indexed[normalizeHeader(header)] = cell
	}

	return Row{cells: indexed}
}

// Cell returns the value under the given header.
func (r Row) Cell(header string) Cell {
	return r.cells[normalizeHeader(header)]
}

// First returns the first non-empty cell among the given header aliases, in
// order. Bank exports disagree on header names, so most lookups go through
// an alias list.
func (r Row) First(aliases ...string) Cell {
	for _, alias := range aliases {
		if c := r.cells[normalizeHeader(alias)]; !c.IsEmpty() {
			return c
		}
	}

	return Cell{}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// Sheet is the decoded file: the original headers in order, plus one Row
// per data line.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// Decode reads a tabular file into a Sheet, choosing the decoder from the
// file extension. CSV is the default for unknown extensions since most
// bank exports are delimited text regardless of what they are called.
func Decode(r io.Reader, filename string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		sh, err := DecodeXLSX(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filename, err)
		}

		return sh, nil
	default:
		sh, err := DecodeCSV(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filename, err)
		}

		return sh, nil
	}
}

// fromCells builds a Sheet out of decoded cell records. The first
// non-empty record defines the headers; rows with no populated cells are
// dropped.
func fromCells(records [][]Cell) *Sheet {
	sh := &Sheet{}

	for _, record := range records {
		if isBlank(record) {
			continue
		}

		if sh.Headers == nil {
			for _, c := range record {
				sh.Headers = append(sh.Headers, c.String())
			}

			continue
		}

		cells := make(map[string]Cell, len(sh.Headers))

		for i, header := range sh.Headers {
			if header == "" || i >= len(record) {
				continue
			}

			cells[header] = record[i]
		}

		sh.Rows = append(sh.Rows, NewRow(cells))
	}

	return sh
}

func isBlank(record []Cell) bool {
	for _, c := range record {
		if !c.IsEmpty() {
			return false
		}
	}

	return true
}
