package mock

import (
	"context"

	"github.com/fwojciec/transdoc"
)

var _ transdoc.Translator = (*Translator)(nil)

// Translator is a mock implementation of transdoc.Translator.
type Translator struct {
	DetectLanguageFn func(ctx context.Context, text string) (*transdoc.Detection, error)
	TranslateFn      func(ctx context.Context, text, from, to string) (string, error)
}

func (t *Translator) DetectLanguage(ctx context.Context, text string) (*transdoc.Detection, error) {
	return t.DetectLanguageFn(ctx, text)
}

func (t *Translator) Translate(ctx context.Context, text, from, to string) (string, error) {
	return t.TranslateFn(ctx, text, from, to)
}
