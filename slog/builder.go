// Package slog provides logging decorators for zipindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zipindex"
)

// Ensure LoggingBuilder implements zipindex.IndexBuilder at compile time.
var _ zipindex.IndexBuilder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps an IndexBuilder with build logging.
type LoggingBuilder struct {
	next   zipindex.IndexBuilder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next zipindex.IndexBuilder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the outcome with the
// build duration and document count.
func (b *LoggingBuilder) Build(ctx context.Context, path string) (*zipindex.Index, error) {
	begin := time.Now()
	idx, err := b.next.Build(ctx, path)
	if err != nil {
		b.logger.Error("index build failed",
			"archive", path,
			"code", zipindex.ErrorCode(err),
			"error", zipindex.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	b.logger.Info("index build",
		"archive", path,
		"documents", idx.Len(),
		"duration", time.Since(begin),
	)
	return idx, nil
}
