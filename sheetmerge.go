// Package sheetmerge provides a fluent API for extracting tables from
// delimited text, JSON, XLSX workbooks, PDF account statements, and images,
// and for merging the results.
//
// Basic usage:
//
//	set, err := sheetmerge.Open("orders.csv").Extract()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	set, err := sheetmerge.FromBytes(data).
//	    Format(format.TSV).
//	    Extract()
//
// Extracted sets from two sources can be combined:
//
//	res, err := sheetmerge.Merge(a, b, merge.Join, merge.Params{
//	    SheetA:     "Sheet1",
//	    SheetB:     "Sheet1",
//	    JoinColumn: "id",
//	    Kind:       merge.Inner,
//	})
//
// For advanced use cases, the per-format packages (delimited, jsondoc,
// statement, imgtable, xlsx) are also available directly.
package sheetmerge

import (
	"github.com/tsawler/sheetmerge/merge"
	"github.com/tsawler/sheetmerge/model"
)

// Open creates an Extractor for a file on disk. The file is read and its
// format resolved when a terminal operation like Extract is called.
//
// Example:
//
//	set, err := sheetmerge.Open("statement.pdf").Extract()
func Open(filename string) *Extractor {
	return &Extractor{filename: filename}
}

// FromBytes creates an Extractor for in-memory data. Without a Filename or
// Format hint the format is detected from the content alone.
//
// Example:
//
//	set, err := sheetmerge.FromBytes(data).Filename("upload.xlsx").Extract()
func FromBytes(data []byte) *Extractor {
	return &Extractor{data: data, haveData: true}
}

// Merge combines two extracted sheet sets with the given strategy. It is a
// convenience wrapper around merge.Merge.
func Merge(a, b *model.SheetSet, strategy merge.Strategy, p merge.Params) (*merge.Result, error) {
	return merge.Merge(a, b, strategy, p)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	set := sheetmerge.Must(sheetmerge.Open("orders.csv").Extract())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
