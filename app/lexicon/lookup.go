package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/SebaMedina172/Anki-App/app/config"
)

// ErrNotFound is returned when the primary source has no data for the word.
var ErrNotFound = errors.New("word not found")

// Entry is what a primary dictionary source knows about a word. Any field
// may be empty; a source with nothing at all returns ErrNotFound instead.
type Entry struct {
	IPA     string
	Meaning string
	Example string
}

// DictionarySource is the language-specific primary lookup: the structured
// dictionary API for English, the Wiktionary scrape for Spanish.
type DictionarySource interface {
	Lookup(ctx context.Context, word string) (Entry, error)
}

// Lookup orchestrates a full word search: validation, primary lookup and
// example resolution.
type Lookup struct {
	cfg       *config.Config
	validator Validator
	cleaner   Cleaner
	primaries map[config.Language]DictionarySource
	examples  ExampleResolver
}

func NewLookup(cfg *config.Config, primaries map[config.Language]DictionarySource, examples ExampleResolver) Lookup {
	return Lookup{
		cfg:       cfg,
		validator: NewValidator(cfg),
		cleaner:   NewCleaner(cfg),
		primaries: primaries,
		examples:  examples,
	}
}

// Search assembles a Record for word in lang. Validation errors and
// ErrNotFound pass through for the HTTP layer to map; the example field
// degrades to a sentinel instead of failing the lookup.
func (l Lookup) Search(ctx context.Context, word string, lang config.Language) (Record, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if err := l.validator.Validate(word, lang); err != nil {
		return Record{}, err
	}

	primary, ok := l.primaries[lang]
	if !ok {
		return Record{}, errors.Wrap(ErrUnsupportedLanguage, string(lang))
	}
	entry, err := primary.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("primary lookup: %w", err)
	}

	meaning, cleanOK := l.cleaner.Clean(entry.Meaning)
	if !cleanOK || l.cleaner.IsMetadata(meaning) {
		meaning = ""
	}

	return Record{
		Word:     word,
		IPA:      strings.TrimSpace(entry.IPA),
		Meaning:  meaning,
		Example:  l.examples.Resolve(ctx, word, lang, entry.Example),
		Language: lang,
	}, nil
}
