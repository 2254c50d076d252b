package transdoc

import "strings"

// Language is a translation target.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// IsAuto reports whether the language is the auto-detect placeholder.
func (l Language) IsAuto() bool {
	return l.Code == LanguageAuto.Code
}

// LanguageAuto lets the model decide; it is never a speech language.
var LanguageAuto = Language{Name: "Auto Detect", Code: "auto"}

var languages = []Language{
	LanguageAuto,
	{Name: "English", Code: "en"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Bengali", Code: "bn"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Chinese (Simplified)", Code: "zh-CN"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Korean", Code: "ko"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Russian", Code: "ru"},
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// FindLanguage looks a language up by code or name, case-insensitively.
// Returns ENOTFOUND if the language is not supported.
func FindLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range languages {
		if strings.EqualFold(l.Code, s) || strings.EqualFold(l.Name, s) {
			return l, nil
		}
	}
	return Language{}, Errorf(ENOTFOUND, "unsupported language %q", s)
}
