package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/transdoc"
)

// Ensure LoggingTranslator implements transdoc.Translator.
var _ transdoc.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with logging.
type LoggingTranslator struct {
	next   transdoc.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next transdoc.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// DetectLanguage delegates to the wrapped translator and logs the operation.
func (t *LoggingTranslator) DetectLanguage(ctx context.Context, text string) (d *transdoc.Detection, err error) {
	defer func(begin time.Time) {
		var lang string
		if d != nil {
			lang = d.Code
		}
		t.logger.Info("detect language",
			"chars", utf8.RuneCountInString(text),
			"lang", lang,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.DetectLanguage(ctx, text)
}

// Translate delegates to the wrapped translator and logs the operation.
func (t *LoggingTranslator) Translate(ctx context.Context, text, from, to string) (translated string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"from", from,
			"to", to,
			"chars", utf8.RuneCountInString(text),
			"translated_chars", utf8.RuneCountInString(translated),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, text, from, to)
}
