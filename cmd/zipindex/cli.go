package main

import (
	"context"
	"io"

	"github.com/fwojciec/zipindex"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Locator    zipindex.Locator
	Builder    zipindex.IndexBuilder
	Formatters *zipindex.FormatterRegistry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool `short:"v" help:"Log index builds to stderr"`
	Fallback bool `help:"Strip tags with regular expressions instead of parsing HTML"`

	Search SearchCmd `cmd:"" help:"Search the indexed corpus for a word"`
	Docs   DocsCmd   `cmd:"" help:"List the indexed documents"`
	Locate LocateCmd `cmd:"" help:"Print the resolved archive location"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term    string `arg:"" optional:"" help:"Search term; omit for an interactive prompt"`
	Archive string `short:"a" help:"Explicit archive path (default: locate automatically)"`
	Label   string `short:"l" help:"Container directory label shown in results (default: archive name)"`
	Format  string `short:"f" default:"plain" help:"Result format (plain, json)"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Archive string `short:"a" help:"Explicit archive path (default: locate automatically)"`
	Label   string `short:"l" help:"Container directory label (default: archive name)"`
	Links   bool   `help:"Show the hyperlinks found in each document"`
	Hash    bool   `help:"Show each document's content hash"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	Archive string `arg:"" optional:"" help:"Explicit archive path to verify"`
}
