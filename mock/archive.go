package mock

import (
	"io"

	"github.com/fwojciec/zipindex"
)

var _ zipindex.ArchiveOpener = (*ArchiveOpener)(nil)

// ArchiveOpener is a mock implementation of zipindex.ArchiveOpener.
type ArchiveOpener struct {
	OpenArchiveFn func(path string) (zipindex.Archive, error)
}

func (o *ArchiveOpener) OpenArchive(path string) (zipindex.Archive, error) {
	return o.OpenArchiveFn(path)
}

var _ zipindex.Archive = (*Archive)(nil)

// Archive is a mock implementation of zipindex.Archive.
type Archive struct {
	EntriesFn func() []zipindex.Entry
	CloseFn   func() error
}

func (a *Archive) Entries() []zipindex.Entry {
	return a.EntriesFn()
}

func (a *Archive) Close() error {
	if a.CloseFn == nil {
		return nil
	}
	return a.CloseFn()
}

var _ zipindex.Entry = (*Entry)(nil)

// Entry is a mock implementation of zipindex.Entry.
type Entry struct {
	NameFn func() string
	OpenFn func() (io.ReadCloser, error)
}

func (e *Entry) Name() string {
	return e.NameFn()
}

func (e *Entry) Open() (io.ReadCloser, error) {
	return e.OpenFn()
}
