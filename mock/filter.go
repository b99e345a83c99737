package mock

import "github.com/fwojciec/zipindex"

var _ zipindex.TokenFilter = (*TokenFilter)(nil)

// TokenFilter is a mock implementation of zipindex.TokenFilter.
type TokenFilter struct {
	AddFn  func(token string)
	TestFn func(token string) bool
}

func (f *TokenFilter) Add(token string) {
	if f.AddFn != nil {
		f.AddFn(token)
	}
}

func (f *TokenFilter) Test(token string) bool {
	return f.TestFn(token)
}
