package sheetmerge

import (
	"os"

	"github.com/tsawler/sheetmerge/delimited"
	"github.com/tsawler/sheetmerge/format"
	"github.com/tsawler/sheetmerge/imgtable"
	"github.com/tsawler/sheetmerge/jsondoc"
	"github.com/tsawler/sheetmerge/model"
	"github.com/tsawler/sheetmerge/ocr"
	"github.com/tsawler/sheetmerge/statement"
	"github.com/tsawler/sheetmerge/xlsx"
)

// Extractor provides a fluent interface for extracting tables from a single
// source. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	haveData bool

	// Configuration
	format    format.Format
	delimiter rune
	engine    imgtable.Engine
}

// clone creates a copy of the Extractor so each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	c := *e
	return &c
}

// Format declares the input format, overriding detection. Use this when the
// source has no meaningful filename, such as an HTTP upload with a generic
// content type.
func (e *Extractor) Format(f format.Format) *Extractor {
	c := e.clone()
	c.format = f
	return c
}

// Filename associates a filename with in-memory data so extension-based
// detection can run. It has no effect on where the data is read from.
func (e *Extractor) Filename(name string) *Extractor {
	c := e.clone()
	c.filename = name
	return c
}

// Delimiter forces the field delimiter for delimited formats, bypassing the
// sniffer. It is ignored for other formats.
func (e *Extractor) Delimiter(d rune) *Extractor {
	c := e.clone()
	c.delimiter = d
	return c
}

// Engine sets the recognition engine used for image sources. When unset,
// Extract falls back to the built-in engine, which is only available in
// builds that enable it.
func (e *Extractor) Engine(eng imgtable.Engine) *Extractor {
	c := e.clone()
	c.engine = eng
	return c
}

// Extract reads the source, resolves its format, and runs the matching
// extraction pipeline. The format is resolved in precedence order: a
// declared Format, then the filename extension, then content sniffing.
// Sources whose format cannot be determined fail with an ExtractionError.
func (e *Extractor) Extract() (*model.SheetSet, error) {
	data := e.data
	if !e.haveData {
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, &model.EnvironmentError{Component: "input file", Err: err}
		}
		data = b
	}

	f := e.format
	if f == format.Unknown {
		f = format.Sniff(e.filename, data)
	}

	switch f {
	case format.CSV:
		return delimited.Extract(data, e.delimiter)
	case format.TSV:
		d := e.delimiter
		if d == 0 {
			d = '\t'
		}
		return delimited.Extract(data, d)
	case format.JSON:
		return jsondoc.Normalize(data)
	case format.XLSX:
		return xlsx.Extract(data)
	case format.PDF:
		return statement.Extract(data)
	case format.Image:
		eng := e.engine
		if eng == nil {
			built, err := ocr.New()
			if err != nil {
				return nil, err
			}
			eng = built
		}
		return imgtable.Extract(data, eng)
	default:
		return nil, model.NewExtractionError("unknown", "unable to determine input format", nil)
	}
}
