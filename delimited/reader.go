// Package delimited turns delimited text (CSV, TSV, and friends) into a
// normalized table, inferring the field separator when it is not declared.
package delimited

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/sheetmerge/model"
)

// SheetName is the conventional name for the single table a delimited
// source produces.
const SheetName = "Sheet1"

// Extract parses delimited text into a single-entry SheetSet. When delim is
// zero the separator is sniffed from the input. The first non-blank line is
// the header; blank header fields become positional Column_N placeholders.
// Data rows shorter than the header are right-padded with the empty marker
// and longer rows are truncated.
//
// Malformed lines never fail extraction: lazy quoting and unbounded field
// counts accept any line shape, so the only parse failure left is a forced
// delimiter the csv reader rejects outright (a quote, newline, or invalid
// rune). Beyond that, Extract errors only for undecodable bytes or an
// input with zero non-blank lines.
func Extract(data []byte, delim rune) (*model.SheetSet, error) {
	text, err := decode(data)
	if err != nil {
		return nil, model.NewExtractionError("CSV", "input is not decodable text", err)
	}

	if delim == 0 {
		delim = SniffDelimiter(text)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var header []string
	table := (*model.Table)(nil)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Only an unusable forced delimiter reaches here; see above.
			return nil, model.NewExtractionError("CSV", "unusable field delimiter", err)
		}
		if isBlank(record) {
			continue
		}

		if header == nil {
			header = headerNames(record)
			table = model.NewTable(header)
			continue
		}
		table.AddRow(record)
	}

	if table == nil {
		return nil, model.NewExtractionError("CSV", "input has no non-blank lines", nil)
	}

	set := model.NewSheetSet()
	set.Add(SheetName, table)
	return set, nil
}

// decode strips a UTF-8 byte order mark if present. Spreadsheet exports
// commonly carry one.
func decode(data []byte) (string, error) {
	dec := unicode.UTF8BOM.NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// headerNames returns column names from the header record, replacing blank
// fields with positional placeholders.
func headerNames(record []string) []string {
	names := make([]string, len(record))
	for i, field := range record {
		name := strings.TrimSpace(field)
		if name == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		names[i] = name
	}
	return names
}

// isBlank reports whether a record has no non-empty fields.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
