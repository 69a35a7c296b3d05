// Package slog provides log/slog decorators for prodex interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shelfworks/prodex"
)

// Ensure LoggingExtractor implements prodex.Extractor.
var _ prodex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. An abstention is logged
// at warn level because it is the signal for the caller to fall back to a
// more general extraction path.
type LoggingExtractor struct {
	next   prodex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next prodex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (prodex.Record, error) {
	begin := time.Now()
	rec, err := e.next.Extract(ctx, page, pctx, opts)
	if err != nil {
		e.logger.Warn("extract abstained",
			"url", pctx.URL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"url", pctx.URL,
		"fields", len(rec),
		"duration", time.Since(begin),
	)
	return rec, nil
}
