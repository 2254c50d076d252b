package main

import (
	"fmt"

	"github.com/fwojciec/transdoc"
)

// Run executes the speak command.
func (c *SpeakCmd) Run(deps *Dependencies) error {
	lang, err := transdoc.FindLanguage(c.Lang)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'transdoc languages' to see supported languages.\n", transdoc.ErrorMessage(err))
		return err
	}

	path, err := deps.Service.SpeakText(deps.Ctx, c.Text, lang)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved audio to %s\n", path)
	return nil
}
