// Package statement extracts transaction rows from credit-card-statement
// PDFs. It is deliberately narrow: each page's text lines are matched
// against a fixed transaction shape (transaction date, optional posting
// date, description, trailing amount) and everything else - headers, page
// totals, running balances - is skipped.
package statement

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/sheetmerge/model"
)

// Columns is the fixed output schema for extracted transactions.
var Columns = []string{"Transaction Date", "Post Date", "Description", "Amount"}

// txnPattern matches one transaction line: MM/DD transaction date, optional
// MM/DD posting date, free-text description, then a trailing amount with
// optional thousands separators, currency sign, and minus or parentheses
// for negatives.
var txnPattern = regexp.MustCompile(`^(\d{2}/\d{2})\s+(?:(\d{2}/\d{2})\s+)?(.+?)\s+(\(?-?\$?[\d,]+\.\d{2}\)?)$`)

// Extract parses a PDF byte stream into one sheet per page of transaction
// rows. Rows with a negative amount (payments and credits) are excluded -
// a fixed domain policy. Pages yielding no transactions are omitted; a
// document yielding none at all is an ExtractionError.
func Extract(data []byte) (*model.SheetSet, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, model.NewExtractionError("PDF", "unreadable PDF document", err)
	}

	var pageLines [][]string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pageLines = append(pageLines, nil)
			continue
		}
		pageLines = append(pageLines, extractLines(p))
	}

	return FromLines(pageLines)
}

// FromLines runs transaction parsing over already-extracted text lines,
// one slice per page. Extract delegates here; tests feed it directly.
func FromLines(pageLines [][]string) (*model.SheetSet, error) {
	set := model.NewSheetSet()
	total := 0

	for i, lines := range pageLines {
		table := model.NewTable(Columns)
		for _, line := range lines {
			row, ok := parseLine(line)
			if !ok {
				continue
			}
			table.AddRow(row)
		}
		if table.RowCount() == 0 {
			continue
		}
		total += table.RowCount()
		set.Add(fmt.Sprintf("Page_%d", i+1), table)
	}

	if total == 0 {
		return nil, model.NewExtractionError("PDF",
			"no transaction rows found (expected transaction date, post date, description, amount)", nil)
	}
	return set, nil
}

// parseLine matches a single text line against the transaction shape.
// It returns false for non-transaction lines and for negative amounts.
func parseLine(line string) ([]string, bool) {
	m := txnPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, false
	}

	amount, ok := parseAmount(m[4])
	if !ok {
		return nil, false
	}
	if amount < 0 {
		return nil, false
	}

	postDate := m[2]
	if postDate == "" {
		postDate = model.Empty
	}

	return []string{
		m[1],
		postDate,
		strings.TrimSpace(m[3]),
		strconv.FormatFloat(amount, 'f', 2, 64),
	}, true
}

// parseAmount normalizes an amount token. Parentheses and a leading minus
// both mean negative; currency signs and thousands separators are dropped.
func parseAmount(s string) (float64, bool) {
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// extractLines rebuilds the page's text lines in reading order from the
// positioned rows the PDF text layer provides. Fragments within a row are
// joined, inserting a space where a horizontal gap separates them.
// A page whose text layer cannot be read yields no lines and is treated
// like an empty page, the same leniency applied to null pages above; if
// every page is unreadable the document still fails with an
// ExtractionError for zero transactions.
func extractLines(p pdf.Page) []string {
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}

	var lines []string
	for _, row := range rows {
		line := joinFragments(row.Content)
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// joinFragments concatenates horizontally-ordered text fragments. A gap
// wider than gapThreshold between one fragment's right edge and the next
// fragment's left edge reads as a word boundary.
const gapThreshold = 1.0

func joinFragments(frags []pdf.Text) string {
	var sb strings.Builder
	prevEnd := 0.0
	for i, f := range frags {
		if i > 0 && f.X-prevEnd > gapThreshold {
			sb.WriteString(" ")
		}
		sb.WriteString(f.S)
		prevEnd = f.X + f.W
	}
	return sb.String()
}
