//go:build ocr

// Package ocr provides the Tesseract-backed recognition engine used by
// image table extraction.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/sheetmerge/model"
)

// Engine recognizes positioned tokens from image bytes using Tesseract.
// It satisfies imgtable.Engine. Each Recognize call creates and closes its
// own Tesseract client, so a single Engine is safe for concurrent use.
type Engine struct {
	language string
}

// New creates a Tesseract-backed recognition engine.
func New() (*Engine, error) {
	return &Engine{language: "eng"}, nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g., "eng+fra"). Default is
// "eng" (English).
func (e *Engine) SetLanguage(lang string) {
	e.language = lang
}

// Recognize performs OCR on image data and returns one token per
// recognized word, with its bounding box in pixel coordinates.
func (e *Engine) Recognize(image []byte) ([]model.Token, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("setting OCR image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognizing words: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, b := range boxes {
		tokens = append(tokens, model.Token{
			Text: b.Word,
			Box: model.BBox{
				Left:   float64(b.Box.Min.X),
				Top:    float64(b.Box.Min.Y),
				Right:  float64(b.Box.Max.X),
				Bottom: float64(b.Box.Max.Y),
			},
		})
	}
	return tokens, nil
}
