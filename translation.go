package transdoc

import "unicode/utf8"

// Translation is the outcome of one translate action.
type Translation struct {
	// Source is the text that was sent for translation, after truncation.
	Source string `json:"source"`

	Translated     string `json:"translated"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`

	// AudioPath is where the spoken translation was saved.
	// Empty when speech was not requested or the target is auto-detect.
	AudioPath string `json:"audioPath,omitempty"`
}

// Truncate returns at most the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
