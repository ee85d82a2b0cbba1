package model

import "math"

// BBox is an axis-aligned bounding box in pixel space with the origin in the
// upper-left corner of the image, as reported by the recognition engine.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 {
	return (b.Left + b.Right) / 2
}

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// Token is a single OCR-recognized text fragment with its bounding box.
// Tokens exist only inside the image extraction pipeline.
type Token struct {
	Text string
	Box  BBox
}

// Boundary is a half-open horizontal interval [Left, Right) defining one
// table column. The outermost boundaries are unbounded so every token
// position falls into some column.
type Boundary struct {
	Left  float64
	Right float64
}

// Contains reports whether x falls within the interval.
func (b Boundary) Contains(x float64) bool {
	return x >= b.Left && x < b.Right
}

// ColumnBoundaries is the ordered set of column intervals inferred from a
// header line. Intervals are non-overlapping and together cover the full
// horizontal range: the first starts at -Inf and the last ends at +Inf.
type ColumnBoundaries []Boundary

// ColumnFor returns the index of the column whose interval contains x.
// A position outside every interval maps to the nearest column.
func (cb ColumnBoundaries) ColumnFor(x float64) int {
	for i, b := range cb {
		if b.Contains(x) {
			return i
		}
	}
	// Unbounded outer edges make this unreachable for non-empty boundaries,
	// but fall back to the nearest interval rather than guessing.
	best := 0
	bestDist := math.Inf(1)
	for i, b := range cb {
		d := math.Min(math.Abs(x-b.Left), math.Abs(x-b.Right))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
