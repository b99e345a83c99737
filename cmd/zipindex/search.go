package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/zipindex"
)

// Run executes the search command. With a term argument it performs one
// query; without one it prompts repeatedly until the user submits a
// blank line.
func (c *SearchCmd) Run(deps *Dependencies) error {
	path, err := deps.Locator.Locate(c.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zipindex.ErrorMessage(err))
		return err
	}

	idx, err := deps.Builder.Build(deps.Ctx, path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zipindex.ErrorMessage(err))
		return err
	}

	label := c.Label
	if label == "" {
		label = archiveLabel(path)
	}

	// An unknown format name is a normal case, not an error.
	formatter, ok := deps.Formatters.Get(c.Format)
	if !ok {
		formatter = zipindex.PlainFormatter{}
	}

	if c.Term != "" {
		c.printResults(deps, formatter, label, zipindex.SearchQuery(idx, c.Term))
		return nil
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "enter a search key=> ")
		if !scanner.Scan() {
			break
		}
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			fmt.Fprintln(deps.Stdout, "Bye")
			break
		}
		c.printResults(deps, formatter, label, zipindex.SearchQuery(idx, term))
	}
	return scanner.Err()
}

func (c *SearchCmd) printResults(deps *Dependencies, formatter zipindex.Formatter, label string, matches []string) {
	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, formatter.FormatNoMatch())
		return
	}
	for _, line := range formatter.FormatMatches(label, matches) {
		fmt.Fprintln(deps.Stdout, line)
	}
}
