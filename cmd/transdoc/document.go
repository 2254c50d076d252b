package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/transdoc"
)

// Run executes the document command.
func (c *DocumentCmd) Run(deps *Dependencies) error {
	target, err := transdoc.FindLanguage(c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'transdoc languages' to see supported languages.\n", transdoc.ErrorMessage(err))
		return err
	}

	p, err := newPayload(c.Path, c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	tr, err := deps.Service.TranslateDocument(deps.Ctx, p, target)
	return printTranslation(deps, tr, err, c.JSON)
}

// newPayload describes the file at path. The format comes from the explicit
// tag if given, otherwise from the file extension.
func newPayload(path, format string) (*transdoc.Payload, error) {
	var f transdoc.Format
	var err error
	if format != "" {
		f, err = transdoc.ParseFormat(format)
	} else {
		f, err = transdoc.FormatFromFilename(path)
	}
	if err != nil {
		return nil, err
	}

	return &transdoc.Payload{
		Format: f,
		Name:   filepath.Base(path),
		Path:   path,
	}, nil
}
