package mock

import (
	"context"

	"github.com/fwojciec/fale"
)

var _ fale.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of fale.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*fale.FetchedDocument, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*fale.FetchedDocument, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
