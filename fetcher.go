package fale

import "context"

// Fetcher retrieves raw documents from remote URLs.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the response body.
	// A malformed url fails with EINVALID before any request is made;
	// transport failures, timeouts and non-2xx responses fail with EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)

	// Close releases idle connections held by the Fetcher.
	Close() error
}
