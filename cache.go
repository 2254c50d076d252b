package transdoc

import (
	"context"
	"time"
)

// CachedTranslation is a stored result of a previous translation.
type CachedTranslation struct {
	Key            string    `json:"key"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TranslationCache remembers translations so identical requests do not
// reach the model twice.
type TranslationCache interface {
	// FindTranslation returns the cached translation of text.
	// Returns ENOTFOUND if there is none.
	FindTranslation(ctx context.Context, text, from, to string) (*CachedTranslation, error)

	// StoreTranslation records the translation of text, replacing any
	// previous entry.
	StoreTranslation(ctx context.Context, text, from, to, translated string) error

	// PurgeTranslations removes entries created before the given time and
	// returns how many were removed.
	PurgeTranslations(ctx context.Context, before time.Time) (int, error)
}
