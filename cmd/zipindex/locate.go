package main

import (
	"fmt"

	"github.com/fwojciec/zipindex"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
	path, err := deps.Locator.Locate(c.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zipindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, path)
	return nil
}
