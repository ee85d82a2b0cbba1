// Package imgtable reconstructs a table from a scanned or photographed
// image. The image is preprocessed, recognized into positioned tokens by an
// injected OCR engine, and reassembled geometrically: tokens cluster
// vertically into lines, the header line defines column boundaries at the
// midpoints between its tokens, and body tokens are assigned to columns by
// horizontal center.
package imgtable

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/sheetmerge/model"
)

// SheetName is the conventional name for the single table an image source
// produces.
const SheetName = "Sheet1"

// lineTolerance is the maximum vertical distance, in (upscaled) pixels,
// between a token's center and a line's running center for the token to
// join that line.
const lineTolerance = 15.0

// Engine is the recognition capability the extractor depends on. An engine
// returns per-token text with bounding boxes in pixel coordinates; plain
// text blobs are useless here because column reconstruction needs geometry.
//
// Engine failures are environment conditions (engine missing or broken),
// never statements about the input data.
type Engine interface {
	Recognize(image []byte) ([]model.Token, error)
}

// Extract runs the full pipeline over raster image bytes. It fails with an
// ExtractionError when the image yields no tokens or fewer than two lines
// (no distinguishable header and body), and with an EnvironmentError when
// the recognition engine itself is unavailable or fails.
func Extract(data []byte, engine Engine) (*model.SheetSet, error) {
	prepared, err := Preprocess(data)
	if err != nil {
		return nil, model.NewExtractionError("Image", "unreadable image", err)
	}

	tokens, err := engine.Recognize(prepared)
	if err != nil {
		if envErr, ok := err.(*model.EnvironmentError); ok {
			return nil, envErr
		}
		return nil, &model.EnvironmentError{Component: "recognition engine", Err: err}
	}

	table, err := Reconstruct(tokens)
	if err != nil {
		return nil, err
	}

	set := model.NewSheetSet()
	set.Add(SheetName, table)
	return set, nil
}

// Reconstruct assembles recognized tokens into a table. Exported separately
// from Extract so the geometry can be exercised with deterministic token
// fixtures.
func Reconstruct(tokens []model.Token) (*model.Table, error) {
	tokens = nonBlank(tokens)
	if len(tokens) == 0 {
		return nil, model.NewExtractionError("Image", "recognition produced no text", nil)
	}

	lines := groupLines(tokens)
	if len(lines) < 2 {
		return nil, model.NewExtractionError("Image", "fewer than two text lines detected", nil)
	}

	headerIdx := headerLine(lines)
	if headerIdx < 0 {
		return nil, model.NewExtractionError("Image", "no header line with multiple columns detected", nil)
	}

	header := lines[headerIdx]
	bounds := InferBoundaries(header)

	columns := make([]string, len(header))
	for i, tok := range header {
		columns[i] = tok.Text
	}
	table := model.NewTable(columns)

	for i, line := range lines {
		if i <= headerIdx {
			continue
		}
		cells := assignCells(line, bounds)
		if cells == nil {
			continue
		}
		table.AddRow(cells)
	}

	if table.RowCount() == 0 {
		return nil, model.NewExtractionError("Image", "no body rows below the header", nil)
	}
	return table, nil
}

// nonBlank drops tokens whose text is empty after trimming.
func nonBlank(tokens []model.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		tok.Text = strings.TrimSpace(tok.Text)
		if tok.Text != "" {
			out = append(out, tok)
		}
	}
	return out
}

// groupLines clusters tokens into lines by vertical position. A token joins
// the first line whose running vertical center is within lineTolerance;
// otherwise it starts a new line. Lines are returned top to bottom, tokens
// within a line left to right.
func groupLines(tokens []model.Token) [][]model.Token {
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Box.Top != sorted[j].Box.Top {
			return sorted[i].Box.Top < sorted[j].Box.Top
		}
		return sorted[i].Box.Left < sorted[j].Box.Left
	})

	type line struct {
		center float64
		tokens []model.Token
	}

	var lines []*line
	for _, tok := range sorted {
		placed := false
		for _, ln := range lines {
			if math.Abs(tok.Box.CenterY()-ln.center) <= lineTolerance {
				ln.tokens = append(ln.tokens, tok)
				// Recenter on the running average so slanted scans drift
				// with their line.
				sum := 0.0
				for _, t := range ln.tokens {
					sum += t.Box.CenterY()
				}
				ln.center = sum / float64(len(ln.tokens))
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, &line{center: tok.Box.CenterY(), tokens: []model.Token{tok}})
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].center < lines[j].center })

	out := make([][]model.Token, len(lines))
	for i, ln := range lines {
		sort.Slice(ln.tokens, func(a, b int) bool { return ln.tokens[a].Box.Left < ln.tokens[b].Box.Left })
		out[i] = ln.tokens
	}
	return out
}

// headerLine returns the index of the first line containing more than one
// token, or -1 if no such line exists.
func headerLine(lines [][]model.Token) int {
	for i, line := range lines {
		if len(line) > 1 {
			return i
		}
	}
	return -1
}

// InferBoundaries derives column intervals from the header tokens: each
// boundary between adjacent columns is the midpoint between the left
// token's right edge and the right token's left edge. The first column is
// unbounded on the left and the last on the right, so every horizontal
// position maps to some column.
func InferBoundaries(header []model.Token) model.ColumnBoundaries {
	bounds := make(model.ColumnBoundaries, len(header))
	for i := range header {
		left := math.Inf(-1)
		if i > 0 {
			left = (header[i-1].Box.Right + header[i].Box.Left) / 2
		}
		right := math.Inf(1)
		if i < len(header)-1 {
			right = (header[i].Box.Right + header[i+1].Box.Left) / 2
		}
		bounds[i] = model.Boundary{Left: left, Right: right}
	}
	return bounds
}

// assignCells places each token of one line into the column whose interval
// contains its horizontal center, concatenating multiple tokens in a column
// with a single space in left-to-right order. A line with no assignable
// tokens yields nil.
func assignCells(line []model.Token, bounds model.ColumnBoundaries) []string {
	if len(line) == 0 {
		return nil
	}

	cells := make([]string, len(bounds))
	for _, tok := range line {
		col := bounds.ColumnFor(tok.Box.CenterX())
		if cells[col] == "" {
			cells[col] = tok.Text
		} else {
			cells[col] += " " + tok.Text
		}
	}
	return cells
}
