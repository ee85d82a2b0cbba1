package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/sheetmerge/model"
)

// Write serializes a SheetSet to workbook bytes: one worksheet per sheet in
// set order, each with its header row followed by data rows.
func Write(set *model.SheetSet) ([]byte, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("nothing to write: sheet set is empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range set.Names() {
		table, _ := set.Table(name)

		if i == 0 {
			// Rename the default sheet instead of leaving it dangling.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("creating sheet %q: %w", name, err)
			}
		}

		if err := writeTable(f, name, table); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTable serializes a single table as a one-sheet workbook.
func WriteTable(name string, table *model.Table) ([]byte, error) {
	set := model.NewSheetSet()
	set.Add(name, table)
	return Write(set)
}

// writeTable renders the header row then data rows onto a worksheet.
func writeTable(f *excelize.File, sheet string, table *model.Table) error {
	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
	}

	for r, row := range table.Rows {
		for c, value := range row {
			if value == model.Empty {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
