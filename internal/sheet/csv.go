package sheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rohanmehta-dev/spendbook/internal/encoding"
)

// DecodeCSV reads a delimited text file. The charset is normalized to
// UTF-8 first and the delimiter is sniffed from the header line, since
// exports use commas, semicolons, or tabs depending on the bank and locale.
func DecodeCSV(r io.Reader) (*Sheet, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, fmt.Errorf("sniff delimiter: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cells := make([][]Cell, 0, len(records))

	for _, record := range records {
		row := make([]Cell, len(record))
		for i, v := range record {
			row[i] = StringCell(v)
		}

		cells = append(cells, row)
	}

	return fromCells(cells), nil
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first line. Comma wins ties.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return 0, err
	}

	line := string(head)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	best := ','
	bestCount := strings.Count(line, ",")

	for _, cand := range []rune{';', '\t', '|'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}

	return best, nil
}
