// Package translate orchestrates extraction, translation and speech for a
// single user action.
package translate

import (
	"context"
	"strings"

	"github.com/fwojciec/transdoc"
)

const (
	// DetectPrefixLen is how many runes of a document are used to detect
	// its language.
	DetectPrefixLen = 500

	// TranslatePrefixLen is how many runes of a document are translated.
	TranslatePrefixLen = 2000
)

// Service translates text and documents and optionally speaks the result.
type Service struct {
	Extractor   transdoc.Extractor
	Translator  transdoc.Translator
	Synthesizer transdoc.Synthesizer
	Audio       transdoc.AudioStore

	// Speak enables speech synthesis of translations.
	Speak bool
}

// TranslateText detects the language of text and translates it to target.
//
// When speech fails the returned Translation is still populated with the
// translated text and err describes the speech failure.
func (s *Service) TranslateText(ctx context.Context, text string, target transdoc.Language) (*transdoc.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, transdoc.Errorf(transdoc.EINVALID, "text required")
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	return s.translate(ctx, text, text, target)
}

// TranslateDocument extracts the text of p and translates its beginning to
// target. Language detection looks at the first DetectPrefixLen runes and
// translation covers the first TranslatePrefixLen runes.
//
// Speech failures are reported as in TranslateText.
func (s *Service) TranslateDocument(ctx context.Context, p *transdoc.Payload, target transdoc.Language) (*transdoc.Translation, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	text, err := s.Extractor.Extract(ctx, p)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, transdoc.Errorf(transdoc.EINVALID, "document contains no text")
	}

	return s.translate(ctx,
		transdoc.Truncate(text, DetectPrefixLen),
		transdoc.Truncate(text, TranslatePrefixLen),
		target,
	)
}

// SpeakText sanitizes text, synthesizes it in lang and stores the audio.
// Returns the saved audio location.
func (s *Service) SpeakText(ctx context.Context, text string, lang transdoc.Language) (string, error) {
	if lang.IsAuto() || lang.Code == "" {
		return "", transdoc.Errorf(transdoc.EINVALID, "speech language required")
	}
	if s.Synthesizer == nil || s.Audio == nil {
		return "", transdoc.Errorf(transdoc.EINTERNAL, "speech not configured")
	}

	clean := transdoc.Sanitize(text)
	if clean == "" {
		return "", transdoc.Errorf(transdoc.EINVALID, "nothing to speak")
	}

	audio, err := s.Synthesizer.Synthesize(ctx, clean, lang.Code)
	if err != nil {
		return "", err
	}
	return s.Audio.SaveAudio(ctx, audio)
}

func (s *Service) translate(ctx context.Context, detectText, source string, target transdoc.Language) (*transdoc.Translation, error) {
	detected, err := s.Translator.DetectLanguage(ctx, detectText)
	if err != nil {
		return nil, err
	}

	translated, err := s.Translator.Translate(ctx, source, detected.Name, target.Name)
	if err != nil {
		return nil, err
	}

	tr := &transdoc.Translation{
		Source:         source,
		Translated:     translated,
		SourceLanguage: detected.Name,
		TargetLanguage: target.Name,
	}

	if s.Speak {
		path, err := s.SpeakText(ctx, translated, target)
		if err != nil {
			return tr, err
		}
		tr.AudioPath = path
	}

	return tr, nil
}

func validateTarget(target transdoc.Language) error {
	if target.IsAuto() {
		return transdoc.Errorf(transdoc.EINVALID, "target language cannot be %s", transdoc.LanguageAuto.Name)
	}
	if target.Name == "" {
		return transdoc.Errorf(transdoc.EINVALID, "target language required")
	}
	return nil
}
