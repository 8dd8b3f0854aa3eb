// Package langcode normalizes language codes and lists the languages a user
// can pick as a translation target.
package langcode

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Default is the language assumed when detection yields nothing usable.
const Default = "en"

// Language is a selectable translation target.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var supported = []string{"en", "es", "fr", "de", "zh", "pt"}

// Normalize returns the canonical BCP 47 form of code. It reports false when
// code is empty or not a well-formed tag.
func Normalize(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	if tag == language.Und {
		return "", false
	}
	return tag.String(), true
}

// NormalizeOr is Normalize with a fallback for unusable codes.
func NormalizeOr(code, fallback string) string {
	if normalized, ok := Normalize(code); ok {
		return normalized
	}
	return fallback
}

// Supported returns the selectable target languages with English names.
func Supported() []Language {
	namer := display.English.Tags()
	out := make([]Language, 0, len(supported))
	for _, code := range supported {
		out = append(out, Language{
			Code: code,
			Name: namer.Name(language.MustParse(code)),
		})
	}
	return out
}

// IsSupported reports whether code normalizes to one of the listed targets.
func IsSupported(code string) bool {
	normalized, ok := Normalize(code)
	if !ok {
		return false
	}
	for _, c := range supported {
		if c == normalized {
			return true
		}
	}
	return false
}
