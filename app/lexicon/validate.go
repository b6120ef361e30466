package lexicon

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/SebaMedina172/Anki-App/app/config"
)

// Validation failure reasons.
var (
	ErrEmptyWord           = errors.New("empty word")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidCharacters   = errors.New("word contains characters outside the language alphabet")
	ErrWrongLanguage       = errors.New("word looks like it belongs to the other language")
)

// Validator checks an input word against a language's character set and
// flags words that look like they belong to the other supported language.
// Pure; performs no I/O.
type Validator struct {
	cfg *config.Config
}

func NewValidator(cfg *config.Config) Validator {
	return Validator{cfg: cfg}
}

// Validate returns nil if word is a plausible lang word, or one of the
// package error values otherwise.
func (v Validator) Validate(word string, lang config.Language) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	if !v.cfg.Supported(lang) {
		return errors.Wrap(ErrUnsupportedLanguage, string(lang))
	}
	if !v.cfg.Alphabets[lang].MatchString(word) {
		return errors.Wrap(ErrInvalidCharacters, word)
	}
	// Known-imprecise heuristic: a handful of very frequent words of the
	// other language submitted under this one are almost always a language
	// selector mistake in the UI.
	other := v.cfg.Other(lang)
	if _, ok := v.cfg.CommonWords[other][strings.ToLower(word)]; ok {
		return errors.Wrapf(ErrWrongLanguage, "%s looks like %s", word, other)
	}
	return nil
}
