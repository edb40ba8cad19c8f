package mock

import (
	"context"

	"github.com/fwojciec/fale"
)

var _ fale.Service = (*Service)(nil)

// Service is a mock implementation of fale.Service.
type Service struct {
	FetchFn func(ctx context.Context, url string) (*fale.Result, error)
}

func (s *Service) Fetch(ctx context.Context, url string) (*fale.Result, error) {
	return s.FetchFn(ctx, url)
}
