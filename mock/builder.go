package mock

import (
	"context"

	"github.com/fwojciec/zipindex"
)

var _ zipindex.IndexBuilder = (*IndexBuilder)(nil)

// IndexBuilder is a mock implementation of zipindex.IndexBuilder.
type IndexBuilder struct {
	BuildFn func(ctx context.Context, path string) (*zipindex.Index, error)
}

func (b *IndexBuilder) Build(ctx context.Context, path string) (*zipindex.Index, error) {
	return b.BuildFn(ctx, path)
}
