package transdoc

import (
	"regexp"
	"strings"
)

var (
	pairedMarkupRe = regexp.MustCompile("(\\*\\*|__|`)")
	noiseRe        = regexp.MustCompile(`[*_~#]`)
)

// Sanitize strips markup and noise characters that a speech synthesizer
// would otherwise read aloud. Delimiters of bold, underline and code spans
// are deleted, remaining *, _, ~ and # become spaces, whitespace runs
// collapse to a single space and the result is trimmed.
//
// Sanitize is only for the speech path. Text that is displayed or sent for
// translation keeps its markup.
func Sanitize(text string) string {
	s := pairedMarkupRe.ReplaceAllString(text, "")
	s = noiseRe.ReplaceAllString(s, " ")
	// Fields splits on every Unicode space, including NBSP and U+3000.
	return strings.Join(strings.Fields(s), " ")
}
