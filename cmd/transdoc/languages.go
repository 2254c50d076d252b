package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/transdoc"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, l := range transdoc.Languages() {
		fmt.Fprintf(w, "%s\t%s\n", l.Code, l.Name)
	}
	return w.Flush()
}
