// Package gemini implements transdoc.Translator with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/transdoc"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Translator implements transdoc.Translator at compile time.
var _ transdoc.Translator = (*Translator)(nil)

// Translator implements transdoc.Translator using Google Gemini.
type Translator struct {
	client *genai.Client
	model  string
}

// NewTranslator creates a new Translator. An empty model selects DefaultModel.
func NewTranslator(client *genai.Client, model string) *Translator {
	if model == "" {
		model = DefaultModel
	}
	return &Translator{client: client, model: model}
}

// DetectLanguage asks the model for the language name and code of text.
func (t *Translator) DetectLanguage(ctx context.Context, text string) (*transdoc.Detection, error) {
	if strings.TrimSpace(text) == "" {
		return nil, transdoc.Errorf(transdoc.EINVALID, "text required")
	}

	reply, err := t.generate(ctx, BuildDetectPrompt(text))
	if err != nil {
		return nil, err
	}

	detection := transdoc.ParseDetection(reply)
	return &detection, nil
}

// Translate asks the model to translate text between two language names.
// An empty reply, such as a blocked response, is an EINTERNAL error.
func (t *Translator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", transdoc.Errorf(transdoc.EINVALID, "text required")
	}
	if to == "" {
		return "", transdoc.Errorf(transdoc.EINVALID, "target language required")
	}

	reply, err := t.generate(ctx, BuildTranslatePrompt(text, from, to))
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", transdoc.Errorf(transdoc.EINTERNAL, "gemini returned empty response")
	}
	return reply, nil
}

func (t *Translator) generate(ctx context.Context, prompt string) (string, error) {
	result, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", transdoc.Errorf(transdoc.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildDetectPrompt builds the prompt asking for the language of text.
func BuildDetectPrompt(text string) string {
	return "Detect the language of the following text. Reply with language name and code only:\n" + text
}

// BuildTranslatePrompt builds the prompt asking to translate text.
// An empty source language lets the model infer it.
func BuildTranslatePrompt(text, from, to string) string {
	if from == "" {
		return fmt.Sprintf("Translate the following text to %s:\n%s", to, text)
	}
	return fmt.Sprintf("Translate the following text from %s to %s:\n%s", from, to, text)
}
