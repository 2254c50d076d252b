package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/transdoc"
)

var (
	_ transdoc.Synthesizer = (*LoggingSynthesizer)(nil)
	_ transdoc.AudioStore  = (*LoggingAudioStore)(nil)
)

// LoggingSynthesizer wraps a Synthesizer with logging.
type LoggingSynthesizer struct {
	next   transdoc.Synthesizer
	logger *slog.Logger
}

// NewLoggingSynthesizer creates a new LoggingSynthesizer.
func NewLoggingSynthesizer(next transdoc.Synthesizer, logger *slog.Logger) *LoggingSynthesizer {
	return &LoggingSynthesizer{next: next, logger: logger}
}

// Synthesize delegates to the wrapped synthesizer and logs the operation.
func (s *LoggingSynthesizer) Synthesize(ctx context.Context, text, lang string) (audio []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("synthesize",
			"lang", lang,
			"chars", utf8.RuneCountInString(text),
			"bytes", len(audio),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Synthesize(ctx, text, lang)
}

// LoggingAudioStore wraps an AudioStore with logging.
type LoggingAudioStore struct {
	next   transdoc.AudioStore
	logger *slog.Logger
}

// NewLoggingAudioStore creates a new LoggingAudioStore.
func NewLoggingAudioStore(next transdoc.AudioStore, logger *slog.Logger) *LoggingAudioStore {
	return &LoggingAudioStore{next: next, logger: logger}
}

// SaveAudio delegates to the wrapped store and logs the operation.
func (s *LoggingAudioStore) SaveAudio(ctx context.Context, data []byte) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save audio",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveAudio(ctx, data)
}
