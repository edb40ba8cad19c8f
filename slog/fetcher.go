// Package slog provides log/slog decorators for fale services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fale"
)

// Ensure LoggingFetcher implements fale.Fetcher.
var _ fale.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   fale.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next fale.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *fale.FetchedDocument, err error) {
	defer func(begin time.Time) {
		var n int
		if doc != nil {
			n = len(doc.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
