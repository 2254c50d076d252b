package mock

import (
	"context"

	"github.com/fwojciec/transdoc"
)

var _ transdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of transdoc.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, p *transdoc.Payload) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, p *transdoc.Payload) (string, error) {
	return e.ExtractFn(ctx, p)
}
