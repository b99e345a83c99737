// Package fs locates source archives on the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/zipindex"
)

// DefaultArchiveName is the archive filename searched for when no
// explicit path is given.
const DefaultArchiveName = "Jan.zip"

// maxAncestorDepth bounds the upward walk from each starting directory.
const maxAncestorDepth = 6

// Ensure Locator implements zipindex.Locator at compile time.
var _ zipindex.Locator = (*Locator)(nil)

// Locator finds the source archive without a fixed working directory
// assumption. It probes the current working directory and its ancestors,
// then the running executable's directory and its ancestors, for the
// default archive name.
type Locator struct {
	archiveName string
}

// NewLocator creates a Locator searching for archiveName, or for
// DefaultArchiveName when archiveName is empty.
func NewLocator(archiveName string) *Locator {
	if archiveName == "" {
		archiveName = DefaultArchiveName
	}
	return &Locator{archiveName: archiveName}
}

// Locate resolves the archive location. An explicit path that names an
// existing file wins immediately; an explicit path that does not exist
// falls back to the ancestor search rather than failing outright.
func (l *Locator) Locate(explicit string) (string, error) {
	if explicit != "" && fileExists(explicit) {
		return explicit, nil
	}

	var searched []string
	for _, dir := range l.candidateDirs() {
		searched = append(searched, dir)
		candidate := filepath.Join(dir, l.archiveName)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", zipindex.Errorf(zipindex.ENOTFOUND,
		"could not locate %s; searched: %s", l.archiveName, strings.Join(searched, ", "))
}

// candidateDirs returns the directories to probe, in search order,
// deduplicated: the working directory and its ancestors, then the
// executable's directory and its ancestors.
func (l *Locator) candidateDirs() []string {
	var dirs []string
	seen := make(map[string]struct{})
	walkUp := func(start string) {
		dir := start
		for i := 0; i <= maxAncestorDepth; i++ {
			if _, ok := seen[dir]; !ok {
				seen[dir] = struct{}{}
				dirs = append(dirs, dir)
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		walkUp(cwd)
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		walkUp(filepath.Dir(exe))
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
