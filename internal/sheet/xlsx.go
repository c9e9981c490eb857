package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DecodeXLSX reads the first worksheet of an Excel file. Numeric cells are
// kept as numbers; cells carrying a date number format are materialized as
// native times so date columns survive Excel's serial-number storage.
func DecodeXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	records := make([][]Cell, len(raw))

	for rowIdx, rawRow := range raw {
		record := make([]Cell, len(rawRow))

		for colIdx, value := range rawRow {
			record[colIdx] = materializeCell(f, sheetName, rowIdx, colIdx, value)
		}

		records[rowIdx] = record
	}

	return fromCells(records), nil
}

// materializeCell converts one raw cell value into a typed Cell.
func materializeCell(f *excelize.File, sheetName string, rowIdx, colIdx int, value string) Cell {
	if strings.TrimSpace(value) == "" {
		return Cell{}
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return StringCell(value)
	}

	axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return NumberCell(num)
	}

	if isDateStyled(f, sheetName, axis) {
		if t, err := excelize.ExcelDateToTime(num, false); err == nil {
			return TimeCell(t)
		}
	}

	return NumberCell(num)
}

// Built-in number format IDs Excel uses for dates and times.
var dateNumFmtIDs = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 45: true, 46: true, 47: true,
}

// isDateStyled reports whether the cell's number format renders a date.
func isDateStyled(f *excelize.File, sheetName, axis string) bool {
	styleID, err := f.GetCellStyle(sheetName, axis)
	if err != nil {
		return false
	}

	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	if dateNumFmtIDs[style.NumFmt] {
		return true
	}

	if style.CustomNumFmt != nil {
		fmtStr := strings.ToLower(*style.CustomNumFmt)
		return strings.ContainsAny(fmtStr, "ymd") && !strings.Contains(fmtStr, "#")
	}

	return false
}
