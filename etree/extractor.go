// Package etree reads word-processor (.docx) documents with beevik/etree.
package etree

import (
	"archive/zip"
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/transdoc"
	"github.com/fwojciec/transdoc/fs"
)

// documentPart is the main story of a WordprocessingML package.
const documentPart = "word/document.xml"

// Ensure Extractor implements transdoc.Extractor at compile time.
var _ transdoc.Extractor = (*Extractor)(nil)

// Extractor extracts body paragraphs from .docx containers.
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

// Extract returns the body paragraphs joined with newlines, in document
// order. Empty paragraphs are kept as empty lines.
func (e *Extractor) Extract(ctx context.Context, p *transdoc.Payload) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	path, release, err := fs.LocalPath(p, e.tempDir)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.ErrorCode(err), transdoc.FormatWordProcessor, err)
	}
	defer release()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EFORMAT, transdoc.FormatWordProcessor, err)
	}
	defer zr.Close()

	doc, err := readPart(zr, documentPart)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EFORMAT, transdoc.FormatWordProcessor, err)
	}

	paragraphs, err := Paragraphs(doc)
	if err != nil {
		return "", transdoc.ExtractError(transdoc.EFORMAT, transdoc.FormatWordProcessor, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// readPart parses one XML part of the container.
func readPart(zr *zip.ReadCloser, name string) (*etree.Document, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, transdoc.Errorf(transdoc.EFORMAT, "missing %s", name)
}

// Paragraphs returns the text of each paragraph that is a direct child of
// the document body. Paragraphs inside tables are not included.
func Paragraphs(doc *etree.Document) ([]string, error) {
	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, transdoc.Errorf(transdoc.EFORMAT, "missing document element")
	}
	body := child(root, "body")
	if body == nil {
		return nil, transdoc.Errorf(transdoc.EFORMAT, "missing body element")
	}

	var out []string
	for _, el := range body.ChildElements() {
		if el.Tag != "p" {
			continue
		}
		var sb strings.Builder
		paragraphText(&sb, el)
		out = append(out, sb.String())
	}
	return out, nil
}

// paragraphText appends the text of every run under el, descending through
// wrappers such as hyperlinks and insertions. Deleted and moved-away runs
// are skipped, and of alternate content only the fallback is read.
func paragraphText(sb *strings.Builder, el *etree.Element) {
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "pPr", "del", "moveFrom":
		case "AlternateContent":
			if fb := child(c, "Fallback"); fb != nil {
				paragraphText(sb, fb)
			}
		case "r":
			runText(sb, c)
		default:
			paragraphText(sb, c)
		}
	}
}

func runText(sb *strings.Builder, run *etree.Element) {
	for _, c := range run.ChildElements() {
		switch c.Tag {
		case "t":
			sb.WriteString(c.Text())
		case "tab", "ptab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		case "noBreakHyphen":
			sb.WriteByte('-')
		}
	}
}

func child(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
