package main

import (
	"fmt"
	"path"

	"github.com/fwojciec/zipindex"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	archivePath, err := deps.Locator.Locate(c.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zipindex.ErrorMessage(err))
		return err
	}

	idx, err := deps.Builder.Build(deps.Ctx, archivePath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zipindex.ErrorMessage(err))
		return err
	}

	if idx.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "no documents indexed")
		return nil
	}

	label := c.Label
	if label == "" {
		label = archiveLabel(archivePath)
	}

	for _, name := range idx.Documents() {
		doc, _ := idx.Doc(name)
		line := fmt.Sprintf("./%s/%s  %d words", label, path.Base(name), doc.Tokens.Len())
		if c.Hash {
			line = fmt.Sprintf("%s  %016x", line, doc.ContentHash)
		}
		fmt.Fprintln(deps.Stdout, line)
		if c.Links {
			for _, link := range doc.Links {
				fmt.Fprintf(deps.Stdout, "    %s\n", link)
			}
		}
	}

	return nil
}
