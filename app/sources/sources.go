// Package sources binds the external-source clients to the lexicon
// pipeline contracts: primary dictionary lookups per language and the
// priority-ordered sentence chains.
package sources

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/SebaMedina172/Anki-App/app/clients/dictionaryapi"
	"github.com/SebaMedina172/Anki-App/app/clients/linguee"
	"github.com/SebaMedina172/Anki-App/app/clients/spanishdict"
	"github.com/SebaMedina172/Anki-App/app/clients/tatoeba"
	"github.com/SebaMedina172/Anki-App/app/clients/wiktionary"
	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
)

// Clients bundles every adapter the pipeline draws from.
type Clients struct {
	Dictionary  dictionaryapi.Client
	Wiktionary  wiktionary.Client
	TatoebaAPI  tatoeba.APIClient
	Tatoeba     *tatoeba.Browser
	Linguee     linguee.Client
	SpanishDict spanishdict.Client
}

// EnglishDictionary adapts the structured dictionary API to the primary
// lookup contract.
type EnglishDictionary struct {
	Client dictionaryapi.Client
}

func (d EnglishDictionary) Lookup(ctx context.Context, word string) (lexicon.Entry, error) {
	items, err := d.Client.Get(ctx, word)
	if err != nil {
		if errors.Is(err, dictionaryapi.ErrNotFound) {
			return lexicon.Entry{}, lexicon.ErrNotFound
		}
		return lexicon.Entry{}, err
	}
	meaning, example := dictionaryapi.FirstDefinition(items)
	if meaning == "" {
		return lexicon.Entry{}, lexicon.ErrNotFound
	}
	return lexicon.Entry{
		IPA:     dictionaryapi.FirstIPA(items),
		Meaning: meaning,
		Example: example,
	}, nil
}

// SpanishDictionary adapts the Wiktionary scrape to the primary lookup
// contract.
type SpanishDictionary struct {
	Client wiktionary.Client
}

func (d SpanishDictionary) Lookup(ctx context.Context, word string) (lexicon.Entry, error) {
	entry, err := d.Client.Fetch(ctx, word)
	if err != nil {
		if errors.Is(err, wiktionary.ErrNotFound) {
			return lexicon.Entry{}, lexicon.ErrNotFound
		}
		return lexicon.Entry{}, err
	}
	return lexicon.Entry{IPA: entry.IPA, Meaning: entry.Meaning, Example: entry.Example}, nil
}

// Primaries returns the per-language primary dictionary sources.
func Primaries(c Clients) map[config.Language]lexicon.DictionarySource {
	return map[config.Language]lexicon.DictionarySource{
		config.English: EnglishDictionary{Client: c.Dictionary},
		config.Spanish: SpanishDictionary{Client: c.Wiktionary},
	}
}

// Chains returns the per-language sentence source chains, cheapest and most
// reliable first. The headless browser stays last everywhere.
func Chains(c Clients) map[config.Language][]lexicon.SentenceSource {
	lingueeSource := lexicon.SourceFunc{
		SourceName: "linguee",
		Fn: func(ctx context.Context, word string) lexicon.Result {
			sentence, err := c.Linguee.Example(ctx, word)
			if err != nil {
				return lexicon.TransportError(err)
			}
			return lexicon.Found(sentence)
		},
	}
	tatoebaAPISource := func(lang config.Language) lexicon.SentenceSource {
		return lexicon.SourceFunc{
			SourceName: "tatoeba-api",
			Fn: func(ctx context.Context, word string) lexicon.Result {
				sentences, err := c.TatoebaAPI.Search(ctx, word, lang)
				if err != nil {
					return lexicon.TransportError(err)
				}
				return lexicon.Found(firstMention(sentences, word))
			},
		}
	}
	tatoebaBrowserSource := func(lang config.Language) lexicon.SentenceSource {
		return lexicon.SourceFunc{
			SourceName: "tatoeba-browser",
			Fn: func(ctx context.Context, word string) lexicon.Result {
				sentences, err := c.Tatoeba.Sentences(ctx, word, lang)
				if err != nil {
					return lexicon.TransportError(err)
				}
				return lexicon.Found(firstMention(sentences, word))
			},
		}
	}
	spanishDictSource := lexicon.SourceFunc{
		SourceName: "spanishdict",
		Fn: func(ctx context.Context, word string) lexicon.Result {
			sentences, err := c.SpanishDict.Examples(ctx, word)
			if err != nil {
				return lexicon.TransportError(err)
			}
			return lexicon.Found(firstMention(sentences, word))
		},
	}

	return map[config.Language][]lexicon.SentenceSource{
		config.English: {
			lingueeSource,
			tatoebaBrowserSource(config.English),
		},
		config.Spanish: {
			tatoebaAPISource(config.Spanish),
			lingueeSource,
			spanishDictSource,
			tatoebaBrowserSource(config.Spanish),
		},
	}
}

// firstMention picks the first candidate that mentions word and is longer
// than a few tokens; the resolver applies the full acceptance test after
// cleaning.
func firstMention(sentences []string, word string) string {
	lower := strings.ToLower(word)
	for _, sentence := range sentences {
		if len(strings.Fields(sentence)) > 3 &&
			strings.Contains(strings.ToLower(sentence), lower) {
			return sentence
		}
	}
	return ""
}
