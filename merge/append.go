package merge

import "github.com/tsawler/sheetmerge/model"

// appendTables stacks B's rows below A's over the union of both column
// sets: A's columns first, then B's columns not already present. Cells a
// source table lacks are the empty marker.
func appendTables(a, b *model.SheetSet, p Params) (*Result, error) {
	ta, err := selectTable(a, p.SheetA, Append, "A")
	if err != nil {
		return nil, err
	}
	tb, err := selectTable(b, p.SheetB, Append, "B")
	if err != nil {
		return nil, err
	}

	columns := unionColumns(ta.Columns, tb.Columns)
	out := model.NewTable(columns)

	appendMapped(out, ta)
	appendMapped(out, tb)

	return &Result{
		Table:      out,
		RowCount:   out.RowCount(),
		SheetNames: []string{p.SheetA, p.SheetB},
	}, nil
}

// unionColumns merges two column lists preserving first-seen order.
func unionColumns(a, b []string) []string {
	columns := append([]string(nil), a...)
	seen := make(map[string]bool, len(a))
	for _, c := range a {
		seen[c] = true
	}
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			columns = append(columns, c)
		}
	}
	return columns
}

// appendMapped copies src's rows into dst, repositioning cells to dst's
// column order.
func appendMapped(dst *model.Table, src *model.Table) {
	// Map each destination column to its source position, -1 when absent.
	srcIdx := make([]int, len(dst.Columns))
	for i, col := range dst.Columns {
		srcIdx[i] = src.ColumnIndex(col)
	}

	for r := range src.Rows {
		cells := make([]string, len(dst.Columns))
		for i, si := range srcIdx {
			if si >= 0 {
				cells[i] = src.Cell(r, si)
			} else {
				cells[i] = model.Empty
			}
		}
		dst.AddRow(cells)
	}
}
