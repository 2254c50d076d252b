package main

import (
	"fmt"

	"github.com/fwojciec/transdoc"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	p, err := newPayload(c.Path, c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	text, err := deps.Extractor.Extract(deps.Ctx, p)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
