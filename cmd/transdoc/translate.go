package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/transdoc"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	target, err := transdoc.FindLanguage(c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'transdoc languages' to see supported languages.\n", transdoc.ErrorMessage(err))
		return err
	}

	tr, err := deps.Service.TranslateText(deps.Ctx, c.Text, target)
	return printTranslation(deps, tr, err, c.JSON)
}

// printTranslation prints a translation result. A speech failure still
// prints the translation before reporting the error.
func printTranslation(deps *Dependencies, tr *transdoc.Translation, err error, asJSON bool) error {
	if tr == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	if asJSON {
		if werr := writeJSON(deps.Stdout, tr); werr != nil {
			return werr
		}
	} else {
		fmt.Fprintf(deps.Stdout, "Detected language: %s\n", tr.SourceLanguage)
		fmt.Fprintf(deps.Stdout, "Translation (%s):\n%s\n", tr.TargetLanguage, tr.Translated)
		if tr.AudioPath != "" {
			fmt.Fprintf(deps.Stdout, "Audio: %s\n", tr.AudioPath)
		}
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: speech failed: %s\n", transdoc.ErrorMessage(err))
		return err
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
