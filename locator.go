package zipindex

// Locator resolves the filesystem location of the source archive.
type Locator interface {
	// Locate returns the path of the archive to index. If explicit is
	// non-empty and names an existing file it wins immediately;
	// otherwise the locator searches for its default archive name along
	// a bounded chain of enclosing directories.
	// Returns ENOTFOUND naming the default filename and the directories
	// searched when nothing matches.
	Locate(explicit string) (string, error)
}
