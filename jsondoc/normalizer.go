// Package jsondoc flattens JSON documents into a normalized table.
//
// An array of objects becomes one row per object, with the column set being
// the union of all keys in first-seen order. A single object becomes one
// row, with nested objects expanded into dotted column names and nested
// arrays collapsed into delimited cells. Scalar or empty input is rejected.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/sheetmerge/model"
)

// SheetName is the conventional name for the single table a JSON source
// produces.
const SheetName = "Sheet1"

// Normalize parses a JSON payload into a single-entry SheetSet.
func Normalize(data []byte) (*model.SheetSet, error) {
	root, err := parse(data)
	if err != nil {
		return nil, model.NewExtractionError("JSON", "invalid JSON", err)
	}

	var table *model.Table
	switch v := root.(type) {
	case []any:
		table, err = fromArray(v)
	case *object:
		table, err = fromObject(v)
	default:
		return nil, model.NewExtractionError("JSON", "input is a scalar, not tabular data", nil)
	}
	if err != nil {
		return nil, err
	}

	set := model.NewSheetSet()
	set.Add(SheetName, table)
	return set, nil
}

// fromArray builds a table from an array of objects: one row per object,
// columns the union of flattened keys in first-seen order.
func fromArray(elems []any) (*model.Table, error) {
	if len(elems) == 0 {
		return nil, model.NewExtractionError("JSON", "array is empty", nil)
	}

	rows := make([]*row, 0, len(elems))
	var columns []string
	seen := make(map[string]bool)

	for i, elem := range elems {
		obj, ok := elem.(*object)
		if !ok {
			return nil, model.NewExtractionError("JSON",
				fmt.Sprintf("array element %d is not an object", i), nil)
		}
		r := newRow()
		flatten(obj, "", r)
		for _, col := range r.cols {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
		rows = append(rows, r)
	}

	table := model.NewTable(columns)
	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := r.vals[col]; ok {
				cells[i] = v
			} else {
				cells[i] = model.Empty
			}
		}
		table.AddRow(cells)
	}
	return table, nil
}

// fromObject flattens a single object into a one-row table.
func fromObject(obj *object) (*model.Table, error) {
	r := newRow()
	flatten(obj, "", r)
	if len(r.cols) == 0 {
		return nil, model.NewExtractionError("JSON", "object is empty", nil)
	}

	table := model.NewTable(r.cols)
	cells := make([]string, len(r.cols))
	for i, col := range r.cols {
		cells[i] = r.vals[col]
	}
	table.AddRow(cells)
	return table, nil
}

// flatten walks a parsed object, producing path-qualified columns. Nested
// objects extend the dotted path; arrays of scalars collapse into a single
// delimited cell; arrays of objects expand by the same union-of-keys rule,
// joining values when several elements share a key.
func flatten(obj *object, prefix string, out *row) {
	for _, key := range obj.keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := obj.vals[key].(type) {
		case *object:
			flatten(v, path, out)
		case []any:
			flattenArray(v, path, out)
		default:
			out.add(path, scalarString(v))
		}
	}
}

// flattenArray handles a nested array value at the given path.
func flattenArray(elems []any, path string, out *row) {
	var scalars []string
	for _, elem := range elems {
		switch v := elem.(type) {
		case *object:
			flatten(v, path, out)
		case []any:
			flattenArray(v, path, out)
		default:
			scalars = append(scalars, scalarString(v))
		}
	}
	if len(scalars) > 0 {
		out.add(path, strings.Join(scalars, ", "))
	}
	if len(elems) == 0 {
		out.add(path, model.Empty)
	}
}

// scalarString renders a scalar JSON value as a cell.
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return model.Empty
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// row accumulates flattened columns for one record, preserving first-seen
// order. Adding to an existing column appends with a comma separator, which
// is how repeated keys from arrays of objects fold into one row.
type row struct {
	cols []string
	vals map[string]string
}

func newRow() *row {
	return &row{vals: make(map[string]string)}
}

func (r *row) add(col, v string) {
	if prev, ok := r.vals[col]; ok {
		if v != model.Empty {
			if prev == model.Empty {
				r.vals[col] = v
			} else {
				r.vals[col] = prev + ", " + v
			}
		}
		return
	}
	r.cols = append(r.cols, col)
	r.vals[col] = v
}

// object is a JSON object with member order preserved. encoding/json's map
// decoding discards order, so parsing walks the token stream instead.
type object struct {
	keys []string
	vals map[string]any
}

// parse decodes JSON preserving object member order. Numbers stay textual
// via json.Number so cells render exactly as written.
func parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing garbage.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return tok, nil
	}
}

func parseObject(dec *json.Decoder) (*object, error) {
	obj := &object{vals: make(map[string]any)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		if _, dup := obj.vals[key]; !dup {
			obj.keys = append(obj.keys, key)
		}
		obj.vals[key] = val
	}
	// Consume closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
