package transdoc

import "context"

// Synthesizer converts text to spoken audio.
type Synthesizer interface {
	// Synthesize returns MP3 audio of text read in the language with the
	// given code. Text should already be sanitized.
	// Returns EINVALID if text is blank or lang is empty.
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// AudioStore persists synthesized audio.
type AudioStore interface {
	// SaveAudio stores MP3 data and returns the saved location.
	SaveAudio(ctx context.Context, data []byte) (string, error)
}
