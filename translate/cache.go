package translate

import (
	"context"
	"strings"

	"github.com/fwojciec/transdoc"
)

// Ensure CachingTranslator implements transdoc.Translator at compile time.
var _ transdoc.Translator = (*CachingTranslator)(nil)

// CachingTranslator serves repeated translations from a cache.
// Language detection always reaches the wrapped Translator.
type CachingTranslator struct {
	Translator transdoc.Translator
	Cache      transdoc.TranslationCache
}

// DetectLanguage delegates to the wrapped Translator.
func (t *CachingTranslator) DetectLanguage(ctx context.Context, text string) (*transdoc.Detection, error) {
	return t.Translator.DetectLanguage(ctx, text)
}

// Translate returns the cached translation of text if there is one,
// otherwise translates it and caches the result.
func (t *CachingTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	cached, err := t.Cache.FindTranslation(ctx, text, from, to)
	if err == nil {
		return cached.Text, nil
	}
	if transdoc.ErrorCode(err) != transdoc.ENOTFOUND {
		return "", transdoc.WrapError(transdoc.EINTERNAL, err, "failed to read translation cache")
	}

	translated, err := t.Translator.Translate(ctx, text, from, to)
	if err != nil {
		return "", err
	}

	// Empty replies are never cached so the next request reaches the model.
	if strings.TrimSpace(translated) == "" {
		return translated, nil
	}
	if err := t.Cache.StoreTranslation(ctx, text, from, to, translated); err != nil {
		return "", transdoc.WrapError(transdoc.EINTERNAL, err, "failed to store translation")
	}
	return translated, nil
}
