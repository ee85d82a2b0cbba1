package merge

import (
	"fmt"

	"github.com/tsawler/sheetmerge/model"
)

// joinTables matches rows from the selected tables on a shared column.
// Matching is exact value equality; duplicate keys produce the cross
// product of matching rows. Result columns are A's columns (the join
// column appears once, in A's position) followed by B's non-join columns,
// suffixed on name collision to stay unique.
func joinTables(a, b *model.SheetSet, p Params) (*Result, error) {
	ta, err := selectTable(a, p.SheetA, Join, "A")
	if err != nil {
		return nil, err
	}
	tb, err := selectTable(b, p.SheetB, Join, "B")
	if err != nil {
		return nil, err
	}

	kind := p.Kind
	if kind == "" {
		kind = Inner
	}
	switch kind {
	case Inner, Left, Right, Outer:
	default:
		return nil, &model.MergeError{
			Strategy: string(Join),
			Reason:   fmt.Sprintf("unknown join kind %q", kind),
		}
	}

	keyA := ta.ColumnIndex(p.JoinColumn)
	keyB := tb.ColumnIndex(p.JoinColumn)
	if keyA < 0 || keyB < 0 {
		return nil, &model.MergeError{
			Strategy: string(Join),
			Column:   p.JoinColumn,
			Reason:   "join column must exist in both selected sheets",
		}
	}

	// B's contribution: every column except the join column.
	bCols := make([]int, 0, len(tb.Columns)-1)
	for i := range tb.Columns {
		if i != keyB {
			bCols = append(bCols, i)
		}
	}

	columns := joinColumns(ta.Columns, tb.Columns, bCols)
	out := model.NewTable(columns)

	// Index B rows by key value, preserving row order per key.
	byKey := make(map[string][]int)
	for r := range tb.Rows {
		k := tb.Cell(r, keyB)
		byKey[k] = append(byKey[k], r)
	}

	emit := func(aRow, bRow int) {
		cells := make([]string, 0, len(columns))
		for i := range ta.Columns {
			if aRow >= 0 {
				cells = append(cells, ta.Cell(aRow, i))
			} else if i == keyA && bRow >= 0 {
				// Unmatched B row: the key still has a value.
				cells = append(cells, tb.Cell(bRow, keyB))
			} else {
				cells = append(cells, model.Empty)
			}
		}
		for _, bi := range bCols {
			if bRow >= 0 {
				cells = append(cells, tb.Cell(bRow, bi))
			} else {
				cells = append(cells, model.Empty)
			}
		}
		out.AddRow(cells)
	}

	matchedB := make(map[int]bool)

	if kind != Right {
		for r := range ta.Rows {
			matches := byKey[ta.Cell(r, keyA)]
			for _, br := range matches {
				matchedB[br] = true
			}
			switch {
			case len(matches) > 0:
				for _, br := range matches {
					emit(r, br)
				}
			case kind == Left || kind == Outer:
				emit(r, -1)
			}
		}
	}

	if kind == Right {
		// Symmetric to left: every B row, A columns empty where unmatched.
		byKeyA := make(map[string][]int)
		for r := range ta.Rows {
			k := ta.Cell(r, keyA)
			byKeyA[k] = append(byKeyA[k], r)
		}
		for br := range tb.Rows {
			matches := byKeyA[tb.Cell(br, keyB)]
			if len(matches) == 0 {
				emit(-1, br)
				continue
			}
			for _, ar := range matches {
				emit(ar, br)
			}
		}
	}

	if kind == Outer {
		for br := range tb.Rows {
			if !matchedB[br] {
				emit(-1, br)
			}
		}
	}

	return &Result{
		Table:      out,
		RowCount:   out.RowCount(),
		SheetNames: []string{p.SheetA, p.SheetB},
	}, nil
}

// joinColumns builds the result schema: A's columns, then B's contributed
// columns renamed with _2, _3, ... suffixes wherever they would collide
// with a name already present.
func joinColumns(aCols, bCols []string, bIdx []int) []string {
	columns := append([]string(nil), aCols...)
	used := make(map[string]bool, len(columns))
	for _, c := range columns {
		used[c] = true
	}

	for _, i := range bIdx {
		name := bCols[i]
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", bCols[i], n)
		}
		used[name] = true
		columns = append(columns, name)
	}
	return columns
}
