// Package model defines the shared data types produced and consumed by the
// sheetmerge extraction pipeline and merge engine.
//
// # Core types
//
// All extractors converge on the same representation:
//
//   - [Table] - ordered column names plus positionally-aligned rows
//   - [SheetSet] - the named, ordered tables produced by one source
//
// A [Table] maintains one invariant: every row has exactly len(Columns)
// cells. [Table.AddRow] enforces it by padding short rows with [Empty] and
// truncating long ones.
//
// # OCR geometry
//
// [Token], [BBox], and [ColumnBoundaries] are transient value types used
// only inside image table extraction. Bounding boxes use pixel coordinates
// with the origin in the upper-left corner.
//
// # Errors
//
// Failures split into three kinds, matched with errors.As:
//
//   - [ExtractionError] - the input does not look like a table of its format
//   - [MergeError] - a merge referenced a missing sheet or column
//   - [EnvironmentError] - a setup problem (e.g. no OCR engine installed)
package model
