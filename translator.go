package transdoc

import (
	"context"
	"strings"
)

// Detection is the source language reported by a Translator.
type Detection struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UnknownDetection is reported when the model gives no usable answer.
var UnknownDetection = Detection{Name: "Unknown", Code: "auto"}

// ParseDetection reads a "<name> <code>" reply. The first field is the name
// and the last field is the code; an empty reply yields UnknownDetection.
func ParseDetection(reply string) Detection {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return UnknownDetection
	}
	return Detection{Name: fields[0], Code: fields[len(fields)-1]}
}

// Translator detects languages and translates text with a language model.
type Translator interface {
	// DetectLanguage reports the language of text.
	// Returns EINVALID if text is blank.
	DetectLanguage(ctx context.Context, text string) (*Detection, error)

	// Translate translates text from one language name to another.
	// Returns EINVALID if text is blank.
	Translate(ctx context.Context, text, from, to string) (string, error)
}
