package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/transdoc"
	main "github.com/fwojciec/transdoc/cmd/transdoc"
	"github.com/fwojciec/transdoc/mock"
	"github.com/fwojciec/transdoc/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTranslator(reply string) *mock.Translator {
	return &mock.Translator{
		DetectLanguageFn: func(_ context.Context, _ string) (*transdoc.Detection, error) {
			return &transdoc.Detection{Name: "English", Code: "en"}, nil
		},
		TranslateFn: func(_ context.Context, _, _, _ string) (string, error) {
			return reply, nil
		},
	}
}

func TestTranslateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints detected language and translation", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Service: &translate.Service{Translator: stubTranslator("Hola")},
		}

		cmd := &main.TranslateCmd{Text: "Hello", To: "es"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Detected language: English")
		assert.Contains(t, stdout.String(), "Translation (Spanish):\nHola")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Service: &translate.Service{Translator: stubTranslator("Hallo")},
		}

		cmd := &main.TranslateCmd{Text: "Hello", To: "German", JSON: true}
		require.NoError(t, cmd.Run(deps))

		var got transdoc.Translation
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Hallo", got.Translated)
		assert.Equal(t, "German", got.TargetLanguage)
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Service: &translate.Service{Translator: stubTranslator("x")},
		}

		cmd := &main.TranslateCmd{Text: "Hello", To: "Klingon"}
		err := cmd.Run(deps)

		assert.Equal(t, transdoc.ENOTFOUND, transdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "transdoc languages")
	})

	t.Run("prints translation before reporting speech failure", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Service: &translate.Service{
				Translator: stubTranslator("Bonjour"),
				Synthesizer: &mock.Synthesizer{
					SynthesizeFn: func(_ context.Context, _, _ string) ([]byte, error) {
						return nil, errors.New("HTTP 503")
					},
				},
				Audio: &mock.AudioStore{},
				Speak: true,
			},
		}

		cmd := &main.TranslateCmd{Text: "Hello", To: "fr", Speak: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Bonjour")
		assert.Contains(t, stderr.String(), "speech failed: HTTP 503")
	})
}
