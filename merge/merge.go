// Package merge combines two extracted SheetSets using one of three
// strategies: append (stack rows over a column union), join (relational
// match on a shared column), or merge-sheets (collect every sheet from
// both sides into one set).
package merge

import (
	"fmt"

	"github.com/tsawler/sheetmerge/model"
)

// Strategy identifies how two sheet sets are combined.
type Strategy string

const (
	// Append stacks one table from each side over the union of their columns.
	Append Strategy = "append"
	// Join matches rows from one table on each side by a shared column.
	Join Strategy = "join"
	// Sheets collects every sheet from both sides into one set.
	Sheets Strategy = "sheets"
)

// JoinKind selects the matching semantics for the Join strategy.
type JoinKind string

const (
	Inner JoinKind = "inner"
	Left  JoinKind = "left"
	Right JoinKind = "right"
	Outer JoinKind = "outer"
)

// Params carries the strategy-specific selections. SheetA and SheetB name
// the table used from each side for Append and Join; JoinColumn and Kind
// apply to Join only. The Sheets strategy ignores all of them.
type Params struct {
	SheetA     string
	SheetB     string
	JoinColumn string
	Kind       JoinKind
}

// Result is the outcome of a merge. Exactly one of Table and Sheets is set:
// Append and Join produce a single table, the Sheets strategy produces a
// new sheet set. RowCount and SheetNames are reported for display by the
// caller; the result itself is always complete, never truncated.
type Result struct {
	Table      *model.Table
	Sheets     *model.SheetSet
	RowCount   int
	SheetNames []string
}

// Merge combines two sheet sets with the given strategy. Unknown
// strategies, missing sheets, and join columns absent from either side all
// fail with a MergeError before any rows are combined.
func Merge(a, b *model.SheetSet, strategy Strategy, p Params) (*Result, error) {
	switch strategy {
	case Append:
		return appendTables(a, b, p)
	case Join:
		return joinTables(a, b, p)
	case Sheets:
		return mergeSheets(a, b)
	default:
		return nil, &model.MergeError{
			Strategy: string(strategy),
			Reason:   "unknown merge strategy",
		}
	}
}

// selectTable resolves one side's selected sheet.
func selectTable(set *model.SheetSet, name string, strategy Strategy, side string) (*model.Table, error) {
	t, ok := set.Table(name)
	if !ok {
		return nil, &model.MergeError{
			Strategy: string(strategy),
			Sheet:    name,
			Reason:   fmt.Sprintf("selected sheet not found in input %s", side),
		}
	}
	return t, nil
}
