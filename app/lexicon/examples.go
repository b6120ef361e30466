package lexicon

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/SebaMedina172/Anki-App/app/config"
)

// ExampleResolver walks a priority-ordered chain of sentence sources per
// language and returns the first candidate that survives cleaning and the
// acceptance test. Sources are ordered by expected reliability; resolution
// short-circuits so the expensive tail sources (the headless browser one in
// particular) only run when everything cheaper came up empty.
type ExampleResolver struct {
	cfg     *config.Config
	cleaner Cleaner
	chains  map[config.Language][]SentenceSource
}

func NewExampleResolver(cfg *config.Config, chains map[config.Language][]SentenceSource) ExampleResolver {
	return ExampleResolver{cfg: cfg, cleaner: NewCleaner(cfg), chains: chains}
}

// Resolve never fails: on total exhaustion it returns the locale sentinel.
// primary is the example the primary dictionary source itself supplied, if
// any; it gets the looser word-count check.
func (r ExampleResolver) Resolve(ctx context.Context, word string, lang config.Language, primary string) string {
	if primary != "" {
		if cleaned, ok := r.cleaner.Clean(primary); ok && r.cleaner.AcceptablePrimary(cleaned) {
			return cleaned
		}
	}

	for _, source := range r.chains[lang] {
		if ctx.Err() != nil {
			break
		}
		res := source.Sentences(ctx, word)
		switch res.Status {
		case StatusTransportError:
			log.Warn().Err(res.Err).
				Str("source", source.Name()).
				Str("word", word).
				Msg("sentence source failed, trying next")
			continue
		case StatusNotFound:
			continue
		}
		cleaned, ok := r.cleaner.Clean(res.Text)
		if !ok || r.cleaner.IsMetadata(cleaned) {
			continue
		}
		if r.cleaner.Acceptable(cleaned, word, lang) {
			return cleaned
		}
	}
	return ExampleSentinel(lang)
}
