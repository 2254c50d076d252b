package transdoc_test

import (
	"testing"

	"github.com/fwojciec/transdoc"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips bold and noise", "**Hello** World_test~", "Hello World test"},
		{"collapses whitespace", "a\n\n\tb   c", "a b c"},
		{"keeps code span content", "run `go test` now", "run go test now"},
		{"keeps underline content", "__important__ note", "important note"},
		{"replaces headings marker", "## Title\nBody", "Title Body"},
		{"replaces single emphasis", "*soft* emphasis", "soft emphasis"},
		{"trims", "   padded   ", "padded"},
		{"empty", "", ""},
		{"only markup", "** __ ` # ~", ""},
		{"keeps unicode", "**নমস্কার** বিশ্ব", "নমস্কার বিশ্ব"},
		{"odd delimiter count", "***x***", "x"},
		{"collapses ideographic spaces", "こんにちは\u3000\u3000世界", "こんにちは 世界"},
		{"collapses no-break spaces", "a\u00a0\u00a0b", "a b"},
		{"collapses em space runs", "a \u2003 b", "a b"},
		{"collapses vertical tab and next line", "a\v\u0085b", "a b"},
		{"trims unicode spaces", "\u3000a\u00a0", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, transdoc.Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text",
		"  spaced\tout\n\ntext ",
		"**Hello** World_test~",
		"# Heading\n\n- *item* one\n- `code`",
		"¡Hola, mundo! こんにちは",
		"a\u00a0 \u3000b\u2003",
	}
	for _, in := range inputs {
		once := transdoc.Sanitize(in)
		assert.Equal(t, once, transdoc.Sanitize(once), "input %q", in)
	}
}

func TestSanitize_CleanTextOnlyCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bonjour le monde.", transdoc.Sanitize("Bonjour\n le   monde. "))
}
