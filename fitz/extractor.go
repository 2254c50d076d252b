// Package fitz reads PDF documents with MuPDF through gen2brain/go-fitz.
package fitz

import (
	"context"
	"strings"

	"github.com/fwojciec/transdoc"
	"github.com/fwojciec/transdoc/fs"
	"github.com/gen2brain/go-fitz"
)

// Ensure Extractor implements transdoc.Extractor at compile time.
var _ transdoc.Extractor = (*Extractor)(nil)

// Extractor extracts the text layer of PDF documents page by page.
type Extractor struct {
	tempDir string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTempDir sets where uploaded payloads are materialized before parsing.
// Defaults to the system temp directory.
func WithTempDir(dir string) Option {
	return func(e *Extractor) {
		e.tempDir = dir
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the text of every page that has any, joined with newlines.
// Pages without a text layer, or whose text cannot be read, are skipped.
// Returns EFORMAT if the file cannot be opened as a PDF.
func (e *Extractor) Extract(ctx context.Context, p *transdoc.Payload) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	path, release, err := fs.LocalPath(p, e.tempDir)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.ErrorCode(err), transdoc.FormatPDF, err)
	}
	defer release()

	doc, err := fitz.New(path)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EFORMAT, transdoc.FormatPDF, err)
	}
	defer doc.Close()

	return JoinPages(ctx, doc)
}

// PageSource exposes per-page text, as *fitz.Document does.
type PageSource interface {
	NumPage() int
	Text(pageNumber int) (string, error)
}

// JoinPages concatenates the text of each page in order, separated by a
// newline. Trailing newlines of a page are dropped before joining. Pages
// that are blank or fail to render text contribute nothing.
func JoinPages(ctx context.Context, src PageSource) (string, error) {
	var pages []string
	for i := 0; i < src.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := src.Text(i)
		if err != nil {
			continue
		}
		text = strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}
