package transdoc

import (
	"context"
	"io"
	"os"
)

// Payload is a document handed to an Extractor.
// Exactly one of Body or Path should be set. Extractors only read the
// payload and never retain it past the call.
type Payload struct {
	// Format selects the reader applied to the payload.
	Format Format

	// Name is the original file name, if known. Used for messages only.
	Name string

	// Body streams the raw document bytes, e.g. from an upload.
	Body io.Reader

	// Path points at a local file holding the document.
	Path string
}

// Validate returns an error if the payload cannot be extracted.
func (p *Payload) Validate() error {
	if p == nil {
		return Errorf(EINVALID, "payload required")
	}
	if p.Format == FormatUnknown {
		return Errorf(EINVALID, "payload format required")
	}
	if p.Body == nil && p.Path == "" {
		return Errorf(EINVALID, "payload body or path required")
	}
	if p.Body != nil && p.Path != "" {
		return Errorf(EINVALID, "payload body and path are mutually exclusive")
	}
	return nil
}

// Open returns a reader over the payload bytes. The caller must close it.
func (p *Payload) Open() (io.ReadCloser, error) {
	if p.Body != nil {
		return io.NopCloser(p.Body), nil
	}
	return os.Open(p.Path)
}

// Extractor converts a document payload into plain text.
type Extractor interface {
	// Extract returns all text in document order, with paragraph or page
	// boundaries marked by newlines. The full text is always returned;
	// truncation is the caller's concern.
	// Returns EDECODE for undecodable text, EFORMAT for unparseable
	// containers and EINVALID for an invalid payload.
	Extract(ctx context.Context, p *Payload) (string, error)
}

// ExtractError wraps an extraction failure with the uniform message shared
// by every format reader.
func ExtractError(code string, f Format, err error) *Error {
	return WrapError(code, err, "failed to extract text from %s file", f)
}
