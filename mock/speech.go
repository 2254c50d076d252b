package mock

import (
	"context"

	"github.com/fwojciec/transdoc"
)

var (
	_ transdoc.Synthesizer = (*Synthesizer)(nil)
	_ transdoc.AudioStore  = (*AudioStore)(nil)
)

// Synthesizer is a mock implementation of transdoc.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, text, lang string) ([]byte, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	return s.SynthesizeFn(ctx, text, lang)
}

// AudioStore is a mock implementation of transdoc.AudioStore.
type AudioStore struct {
	SaveAudioFn func(ctx context.Context, data []byte) (string, error)
}

func (s *AudioStore) SaveAudio(ctx context.Context, data []byte) (string, error) {
	return s.SaveAudioFn(ctx, data)
}
