package transdoc

import (
	"path/filepath"
	"strings"
)

// Format identifies which reader turns a payload into text.
// The zero value is FormatUnknown and is never extractable.
type Format uint8

// Supported document formats.
const (
	FormatUnknown Format = iota
	FormatPlain
	FormatWordProcessor
	FormatPDF
)

// Formats returns every extractable format in declaration order.
func Formats() []Format {
	return []Format{FormatPlain, FormatWordProcessor, FormatPDF}
}

// String returns the format tag.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatWordProcessor:
		return "word-processor"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Extension returns the file extension conventionally used for the format,
// without the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatPlain:
		return "txt"
	case FormatWordProcessor:
		return "docx"
	case FormatPDF:
		return "pdf"
	default:
		return ""
	}
}

// ParseFormat returns the format for a tag or a file extension.
// Returns EINVALID for anything else.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "plain", "txt", "text":
		return FormatPlain, nil
	case "word-processor", "docx":
		return FormatWordProcessor, nil
	case "pdf":
		return FormatPDF, nil
	}
	return FormatUnknown, Errorf(EINVALID, "unsupported format %q", s)
}

// FormatFromFilename returns the format implied by a file name's extension.
func FormatFromFilename(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return FormatUnknown, Errorf(EINVALID, "cannot infer format of %q: no file extension", name)
	}
	return ParseFormat(ext)
}
