package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/shelfworks/prodex"
)

// Ensure LoggingSource implements prodex.PageSource.
var _ prodex.PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource with debug logging.
type LoggingSource struct {
	next   prodex.PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next prodex.PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Open logs the URL being opened and delegates to the wrapped source.
func (s *LoggingSource) Open(ctx context.Context, url string) (page prodex.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Open(ctx, url)
}

// Close delegates to the wrapped source.
func (s *LoggingSource) Close() error {
	return s.next.Close()
}
