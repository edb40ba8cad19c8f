// Package http provides the HTTP transport for fale: a Fetcher that
// retrieves remote documents and a Server that exposes the rewrite service.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/fale"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps the number of body bytes read from a response.
const DefaultMaxBodySize int64 = 10 << 20

// DefaultUserAgent is sent with every outbound request unless overridden.
const DefaultUserAgent = "fale/1.0 (+https://github.com/fwojciec/fale)"

// Ensure Fetcher implements fale.Fetcher at compile time.
var _ fale.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using plain HTTP GET requests.
// It does not execute JavaScript, follow meta refreshes or retry.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests, including reading the body.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header of outbound requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest response body the Fetcher accepts.
// Larger responses fail with EFETCH.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithHTTPClient replaces the underlying client, e.g. to supply a custom transport.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}

	return f
}

// Fetch retrieves the document at url with a single GET request.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*fale.FetchedDocument, error) {
	if err := fale.ValidateURL(url); err != nil {
		return nil, err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fale.Errorf(fale.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fale.Errorf(fale.EFETCH, "Failed to fetch content: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fale.Errorf(fale.EFETCH, "Failed to fetch content: HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fale.Errorf(fale.EFETCH, "Failed to fetch content: reading body: %v", err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, fale.Errorf(fale.EFETCH, "Failed to fetch content: body exceeds %d bytes", f.maxBodySize)
	}

	return &fale.FetchedDocument{
		URL:  resp.Request.URL.String(),
		Body: string(body),
	}, nil
}

// Close releases idle keep-alive connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
