// Package proxy wires a fale.Fetcher and a fale.Rewriter into the
// fetch, transform and extract pipeline.
package proxy

import (
	"context"
	"strings"

	"github.com/fwojciec/fale"
)

// Ensure Service implements fale.Service at compile time.
var _ fale.Service = (*Service)(nil)

// Service runs one fetch and rewrite per call. It holds no mutable state,
// so a single Service may serve concurrent callers.
type Service struct {
	Fetcher  fale.Fetcher
	Rewriter fale.Rewriter
}

// NewService creates a new Service.
func NewService(fetcher fale.Fetcher, rewriter fale.Rewriter) *Service {
	return &Service{
		Fetcher:  fetcher,
		Rewriter: rewriter,
	}
}

// Fetch retrieves url and returns its rewritten title and body content.
// Errors from the Fetcher are returned as is; the service never retries.
func (s *Service) Fetch(ctx context.Context, url string) (*fale.Result, error) {
	url = strings.TrimSpace(url)
	if err := fale.ValidateURL(url); err != nil {
		return nil, err
	}

	doc, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := s.Rewriter.Rewrite(doc, url)
	if err != nil {
		return nil, err
	}
	return result, nil
}
