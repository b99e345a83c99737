// Package zip reads zip files as zipindex Archives.
package zip

import (
	"archive/zip"
	"io"

	"github.com/fwojciec/zipindex"
)

// Ensure Opener implements zipindex.ArchiveOpener at compile time.
var _ zipindex.ArchiveOpener = (*Opener)(nil)

// Opener opens zip files on the local filesystem.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenArchive opens the zip file at path.
// Returns EUNREADABLE if the file is missing or is not a valid zip
// archive.
func (o *Opener) OpenArchive(path string) (zipindex.Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, zipindex.Errorf(zipindex.EUNREADABLE, "cannot open archive %q: %v", path, err)
	}
	return &Archive{rc: rc}, nil
}

// Ensure Archive implements zipindex.Archive at compile time.
var _ zipindex.Archive = (*Archive)(nil)

// Archive is a zip-backed zipindex.Archive.
type Archive struct {
	rc *zip.ReadCloser
}

// Entries returns every file entry in the archive, in archive order.
// Directory entries are skipped.
func (a *Archive) Entries() []zipindex.Entry {
	entries := make([]zipindex.Entry, 0, len(a.rc.File))
	for _, f := range a.rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, &entry{f: f})
	}
	return entries
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.rc.Close()
}

type entry struct {
	f *zip.File
}

func (e *entry) Name() string {
	return e.f.Name
}

func (e *entry) Open() (io.ReadCloser, error) {
	return e.f.Open()
}
