package model

import "fmt"

// SheetSet is a named, ordered collection of tables produced by one source.
// A single-table source yields one conventionally-named entry; multi-sheet
// workbooks and multi-page statements yield one entry per detected table.
// Names are unique within the set; Add resolves collisions by suffixing.
type SheetSet struct {
	names  []string
	tables map[string]*Table
}

// NewSheetSet creates an empty sheet set.
func NewSheetSet() *SheetSet {
	return &SheetSet{tables: make(map[string]*Table)}
}

// Add inserts a table under the given name, keeping insertion order. If the
// name is already taken the sheet is stored as name_2, name_3, and so on.
// The name actually used is returned.
func (s *SheetSet) Add(name string, t *Table) string {
	actual := name
	for n := 2; ; n++ {
		if _, taken := s.tables[actual]; !taken {
			break
		}
		actual = fmt.Sprintf("%s_%d", name, n)
	}
	s.names = append(s.names, actual)
	s.tables[actual] = t
	return actual
}

// Table returns the table stored under name.
func (s *SheetSet) Table(name string) (*Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Names returns the sheet names in insertion order.
func (s *SheetSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of sheets in the set.
func (s *SheetSet) Len() int {
	return len(s.names)
}

// First returns the first sheet's name and table, or "" and nil for an
// empty set. Callers that only care about single-table sources use this.
func (s *SheetSet) First() (string, *Table) {
	if len(s.names) == 0 {
		return "", nil
	}
	return s.names[0], s.tables[s.names[0]]
}
