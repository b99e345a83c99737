package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/zipindex"
	"github.com/fwojciec/zipindex/bloom"
	"github.com/fwojciec/zipindex/fs"
	"github.com/fwojciec/zipindex/goquery"
	"github.com/fwojciec/zipindex/indexer"
	ziregexp "github.com/fwojciec/zipindex/regexp"
	zislog "github.com/fwojciec/zipindex/slog"
	zizip "github.com/fwojciec/zipindex/zip"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default archive filename searched for when no explicit path is
	// given. Set before calling Run().
	ArchiveName string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{ArchiveName: defaultArchiveName()}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("zipindex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'zipindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var extractor zipindex.Extractor = goquery.NewExtractor()
	if cli.Fallback {
		extractor = ziregexp.NewExtractor()
	}

	ix := &indexer.Indexer{
		Opener:         zizip.NewOpener(),
		Extractor:      extractor,
		Locator:        fs.NewLocator(m.ArchiveName),
		NewTokenFilter: bloom.NewTokenFilter,
		OnEntryError: func(name string, err error) {
			logger.Warn("entry not decoded", "entry", name, "error", err)
		},
	}

	deps.Locator = ix.Locator
	deps.Builder = zislog.NewLoggingBuilder(ix, logger)
	deps.Formatters = zipindex.NewFormatterRegistry()
	deps.Formatters.Register("plain", zipindex.PlainFormatter{})
	deps.Formatters.Register("json", zipindex.JSONFormatter{})

	return kongCtx.Run(deps)
}

func defaultArchiveName() string {
	if name := os.Getenv("ZIPINDEX_ARCHIVE"); name != "" {
		return name
	}
	return fs.DefaultArchiveName
}

// archiveLabel derives the conventional top-level folder name from the
// archive path (Jan.zip → Jan).
func archiveLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
