package merge

import "github.com/tsawler/sheetmerge/model"

// mergeSheets combines the two inputs into one workbook. Every sheet from
// A is kept first, then every sheet from B; name collisions are resolved
// by the set's usual numeric suffixing. RowCount totals the data rows
// across every combined sheet.
func mergeSheets(a, b *model.SheetSet) (*Result, error) {
	out := model.NewSheetSet()
	names := make([]string, 0, a.Len()+b.Len())
	rows := 0

	for _, name := range a.Names() {
		t, _ := a.Table(name)
		names = append(names, out.Add(name, t))
		rows += t.RowCount()
	}
	for _, name := range b.Names() {
		t, _ := b.Table(name)
		names = append(names, out.Add(name, t))
		rows += t.RowCount()
	}

	return &Result{
		Sheets:     out,
		RowCount:   rows,
		SheetNames: names,
	}, nil
}
