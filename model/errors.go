package model

import "fmt"

// ExtractionError indicates that an input does not conform to the expected
// shape for its declared or detected format: no rows, unparseable structure,
// or an ambiguous header. It never describes a configuration problem.
type ExtractionError struct {
	Format string // format name, e.g. "CSV", "PDF"
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates an ExtractionError for the given format.
func NewExtractionError(format, reason string, err error) *ExtractionError {
	return &ExtractionError{Format: format, Reason: reason, Err: err}
}

// MergeError indicates that a merge request referenced a sheet or join
// column that does not exist, or a join column not shared by both sides.
type MergeError struct {
	Strategy string
	Sheet    string // offending sheet name, if any
	Column   string // offending column name, if any
	Reason   string
}

func (e *MergeError) Error() string {
	msg := fmt.Sprintf("%s merge failed: %s", e.Strategy, e.Reason)
	if e.Sheet != "" {
		msg += fmt.Sprintf(" (sheet %q)", e.Sheet)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %q)", e.Column)
	}
	return msg
}

// EnvironmentError indicates a configuration or environment condition, such
// as the recognition engine not being installed. It is never caused by the
// input data, so callers can message it separately from ExtractionError.
type EnvironmentError struct {
	Component string
	Err       error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Component, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}
