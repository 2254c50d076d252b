// Package extract dispatches document payloads to the reader for their
// format and implements the plain text reader.
package extract

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/fwojciec/transdoc"
)

// Ensure Dispatcher implements transdoc.Extractor at compile time.
var _ transdoc.Extractor = (*Dispatcher)(nil)

// Dispatcher routes a payload to the Extractor registered for its format.
type Dispatcher struct {
	Plain         transdoc.Extractor
	WordProcessor transdoc.Extractor
	PDF           transdoc.Extractor
}

// Extract validates the payload and delegates to the matching reader.
// Formats outside the closed set fail with EINVALID instead of yielding
// empty text.
func (d *Dispatcher) Extract(ctx context.Context, p *transdoc.Payload) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var next transdoc.Extractor
	switch p.Format {
	case transdoc.FormatPlain:
		next = d.Plain
	case transdoc.FormatWordProcessor:
		next = d.WordProcessor
	case transdoc.FormatPDF:
		next = d.PDF
	default:
		return "", transdoc.Errorf(transdoc.EINVALID, "unsupported format %q", p.Format)
	}
	if next == nil {
		return "", transdoc.Errorf(transdoc.EINTERNAL, "no extractor configured for %s", p.Format)
	}

	return next.Extract(ctx, p)
}

// Ensure PlainExtractor implements transdoc.Extractor at compile time.
var _ transdoc.Extractor = (*PlainExtractor)(nil)

// PlainExtractor returns UTF-8 payloads verbatim.
type PlainExtractor struct{}

// NewPlainExtractor creates a new PlainExtractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Extract reads the whole payload and returns it unchanged.
// Returns EDECODE if the bytes are not valid UTF-8.
func (e *PlainExtractor) Extract(ctx context.Context, p *transdoc.Payload) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	rc, err := p.Open()
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EINTERNAL, transdoc.FormatPlain, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EINTERNAL, transdoc.FormatPlain, err)
	}

	if !utf8.Valid(b) {
		return "", transdoc.ExtractError(transdoc.EDECODE, transdoc.FormatPlain,
			transdoc.Errorf(transdoc.EDECODE, "invalid utf-8 at byte %d", invalidOffset(b)))
	}

	return string(b), nil
}

// invalidOffset returns the index of the first byte that breaks UTF-8.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
