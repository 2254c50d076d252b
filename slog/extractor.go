// Package slog decorates transdoc services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/transdoc"
)

// Ensure LoggingExtractor implements transdoc.Extractor.
var _ transdoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   transdoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next transdoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, p *transdoc.Payload) (text string, err error) {
	defer func(begin time.Time) {
		var format, name string
		if p != nil {
			format, name = p.Format.String(), p.Name
		}
		e.logger.Info("extract",
			"format", format,
			"name", name,
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, p)
}
