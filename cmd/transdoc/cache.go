package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/transdoc"
)

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	if c.OlderThan < 0 {
		err := transdoc.Errorf(transdoc.EINVALID, "--older-than must not be negative")
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	n, err := deps.Cache.PurgeTranslations(deps.Ctx, time.Now().Add(-c.OlderThan))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", transdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached translations\n", n)
	return nil
}
