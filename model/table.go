package model

// Empty is the explicit marker for a missing cell. Every extractor and merge
// strategy uses it; a row never omits a cell.
const Empty = ""

// Table is the uniform columns+rows representation all extractors converge to.
// Columns are ordered and define the schema; every row has exactly
// len(Columns) cells, aligned positionally.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// AddRow appends a row, right-padding short rows with Empty and truncating
// long rows to the column count. This is the lenient policy shared by the
// delimited and workbook extractors: partial data beats rejection.
func (t *Table) AddRow(cells []string) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Empty
		}
	}
	t.Rows = append(t.Rows, row)
}

// Cell returns the value at the given row and column, or Empty if either
// index is out of bounds.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return Empty
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return Empty
	}
	return t.Rows[row][col]
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
