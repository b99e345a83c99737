package mock

import "github.com/fwojciec/zipindex"

var _ zipindex.Locator = (*Locator)(nil)

// Locator is a mock implementation of zipindex.Locator.
type Locator struct {
	LocateFn func(explicit string) (string, error)
}

func (l *Locator) Locate(explicit string) (string, error) {
	return l.LocateFn(explicit)
}
