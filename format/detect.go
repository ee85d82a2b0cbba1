// Package format provides input format detection for the sheetmerge library.
package format

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
)

// Format represents a supported tabular input format. The set is closed:
// dispatch never guesses beyond these, and an unrecognized input is an
// explicit error rather than a best-effort parse.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CSV indicates comma (or sniffed) delimited text.
	CSV
	// TSV indicates tab-delimited text.
	TSV
	// JSON indicates a JSON document.
	JSON
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PDF indicates a PDF document.
	PDF
	// Image indicates a raster image (PNG or JPEG) of a table.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "CSV"
	case TSV:
		return "TSV"
	case JSON:
		return "JSON"
	case XLSX:
		return "XLSX"
	case PDF:
		return "PDF"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Parse maps a declared format identifier (case-insensitive) to a Format.
func Parse(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV
	case "tsv":
		return TSV
	case "json":
		return JSON
	case "xlsx":
		return XLSX
	case "pdf":
		return PDF
	case "image", "png", "jpg", "jpeg":
		return Image
	default:
		return Unknown
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return CSV
	case ".tsv":
		return TSV
	case ".json":
		return JSON
	case ".xlsx":
		return XLSX
	case ".pdf":
		return PDF
	case ".png", ".jpg", ".jpeg":
		return Image
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format. It recognizes
// PDF, PNG, JPEG, and ZIP-based workbooks; text formats need DetectContent.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// PNG magic: \x89PNG
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		return Image
	}

	// JPEG magic: \xFF\xD8\xFF
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return Image
	}

	// ZIP magic (XLSX is a ZIP archive): PK\x03\x04
	if bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}) {
		if isXLSXArchive(data) {
			return XLSX
		}
		return Unknown
	}

	return Unknown
}

// isXLSXArchive inspects a ZIP archive for workbook markers.
func isXLSXArchive(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/") {
			return true
		}
	}
	return false
}

// DetectContent determines the format of a text payload when magic bytes
// and extension are inconclusive. A payload that parses as JSON is JSON;
// anything else text-like falls back to delimited text. This ordering is a
// secondary fallback only - extension and magic detection take precedence.
func DetectContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\xef\xbb\xbf")
	if len(trimmed) == 0 {
		return Unknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		if json.Valid(trimmed) {
			return JSON
		}
	}

	return CSV
}

// Sniff resolves a format from (in precedence order) filename extension,
// magic bytes, then content inspection.
func Sniff(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	if f := DetectFromMagic(data); f != Unknown {
		return f
	}
	return DetectContent(data)
}
