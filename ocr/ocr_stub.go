//go:build !ocr

// Package ocr provides the Tesseract-backed recognition engine used by
// image table extraction.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. Constructing or using the engine reports an EnvironmentError, which
// callers surface as a setup problem rather than a malformed input.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/sheetmerge/model"
)

// ErrNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Engine is a stub recognition engine that reports OCR as unavailable.
type Engine struct{}

// New returns an EnvironmentError indicating OCR support is not enabled.
func New() (*Engine, error) {
	return nil, &model.EnvironmentError{Component: "recognition engine", Err: ErrNotEnabled}
}

// SetLanguage is a no-op for the stub engine.
func (e *Engine) SetLanguage(lang string) {}

// Recognize returns an EnvironmentError indicating OCR support is not
// enabled. It is safe to call on a nil engine.
func (e *Engine) Recognize(image []byte) ([]model.Token, error) {
	return nil, &model.EnvironmentError{Component: "recognition engine", Err: ErrNotEnabled}
}
