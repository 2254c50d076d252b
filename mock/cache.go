package mock

import (
	"context"
	"time"

	"github.com/fwojciec/transdoc"
)

var _ transdoc.TranslationCache = (*TranslationCache)(nil)

// TranslationCache is a mock implementation of transdoc.TranslationCache.
type TranslationCache struct {
	FindTranslationFn   func(ctx context.Context, text, from, to string) (*transdoc.CachedTranslation, error)
	StoreTranslationFn  func(ctx context.Context, text, from, to, translated string) error
	PurgeTranslationsFn func(ctx context.Context, before time.Time) (int, error)
}

func (c *TranslationCache) FindTranslation(ctx context.Context, text, from, to string) (*transdoc.CachedTranslation, error) {
	return c.FindTranslationFn(ctx, text, from, to)
}

func (c *TranslationCache) StoreTranslation(ctx context.Context, text, from, to, translated string) error {
	return c.StoreTranslationFn(ctx, text, from, to, translated)
}

func (c *TranslationCache) PurgeTranslations(ctx context.Context, before time.Time) (int, error) {
	return c.PurgeTranslationsFn(ctx, before)
}
