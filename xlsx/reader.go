// Package xlsx reads and writes Excel workbooks for the sheetmerge
// pipeline, built on excelize.
package xlsx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/sheetmerge/model"
)

// Extract reads workbook bytes into a SheetSet with one entry per
// worksheet, in workbook order. Within a sheet the first non-blank row is
// the header (blank header cells become Column_N placeholders) and the
// remaining rows are data, padded or truncated to the header width.
// Worksheets with no content are skipped; a workbook with no populated
// worksheet at all is an ExtractionError.
func Extract(data []byte) (*model.SheetSet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, model.NewExtractionError("XLSX", "unreadable workbook", err)
	}
	defer f.Close()

	set := model.NewSheetSet()
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, model.NewExtractionError("XLSX",
				fmt.Sprintf("reading sheet %q", sheetName), err)
		}

		table := tableFromRows(rows)
		if table == nil {
			continue
		}
		set.Add(sheetName, table)
	}

	if set.Len() == 0 {
		return nil, model.NewExtractionError("XLSX", "workbook has no populated sheets", nil)
	}
	return set, nil
}

// tableFromRows converts raw sheet rows to a table, or nil for an empty
// sheet.
func tableFromRows(rows [][]string) *model.Table {
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return nil
	}

	table := model.NewTable(headerNames(rows[start]))
	for _, row := range rows[start+1:] {
		if isBlankRow(row) {
			continue
		}
		table.AddRow(row)
	}
	return table
}

// headerNames replaces blank header cells with positional placeholders.
func headerNames(row []string) []string {
	names := make([]string, len(row))
	for i, cell := range row {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		names[i] = name
	}
	return names
}

// isBlankRow reports whether every cell in the row is blank.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
