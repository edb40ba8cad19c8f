package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fale"
)

// Ensure LoggingService implements fale.Service.
var _ fale.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with logging. Failures are logged at
// warn level with their error code.
type LoggingService struct {
	next   fale.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next fale.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Fetch delegates to the wrapped service and logs the outcome.
func (s *LoggingService) Fetch(ctx context.Context, url string) (result *fale.Result, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("rewrite",
				"url", url,
				"code", fale.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("rewrite",
			"url", url,
			"title", result.Title,
			"bytes", len(result.Content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Fetch(ctx, url)
}
