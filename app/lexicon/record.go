package lexicon

import (
	"strings"

	"github.com/SebaMedina172/Anki-App/app/config"
)

// Example sentinels returned when no acceptable usage sentence was found.
const (
	ExampleNotFoundEN = "Example not found"
	ExampleNotFoundES = "Ejemplo no encontrado"
)

// Record is the assembled result of a word lookup. It is built fresh per
// request and never persisted.
type Record struct {
	Word     string          `json:"word"`
	IPA      string          `json:"ipa"`
	Meaning  string          `json:"meaning"`
	Example  string          `json:"example"`
	Language config.Language `json:"language"`
}

// ExampleSentinel returns the locale-appropriate "not found" example value.
func ExampleSentinel(lang config.Language) string {
	if lang == config.Spanish {
		return ExampleNotFoundES
	}
	return ExampleNotFoundEN
}

// IsExampleSentinel reports whether s carries one of the sentinel values,
// in any casing.
func IsExampleSentinel(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, strings.ToLower(ExampleNotFoundEN)) ||
		strings.Contains(lower, strings.ToLower(ExampleNotFoundES))
}
