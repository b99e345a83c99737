package zipindex

import "io"

// Entry is one named member of an Archive.
type Entry interface {
	// Name returns the entry's relative path inside the archive.
	Name() string

	// Open returns a reader over the entry's decompressed bytes.
	Open() (io.ReadCloser, error)
}

// Archive is a read-only container of named entries, owned for the
// duration of one index build and released afterwards.
type Archive interface {
	// Entries returns every entry in the archive.
	Entries() []Entry

	// Close releases the underlying resources.
	Close() error
}

// ArchiveOpener opens archives by filesystem path.
type ArchiveOpener interface {
	// OpenArchive opens the archive at path.
	// Returns EUNREADABLE if the file is missing or is not a valid
	// archive.
	OpenArchive(path string) (Archive, error)
}
