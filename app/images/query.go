package images

import (
	"context"
	"strings"

	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
)

// Translator is the single opaque translation call the image pipeline
// depends on.
type Translator interface {
	Translate(ctx context.Context, q, from, to string) (string, error)
}

// TranslateFunc adapts a function to the Translator interface.
type TranslateFunc func(ctx context.Context, q, from, to string) (string, error)

func (f TranslateFunc) Translate(ctx context.Context, q, from, to string) (string, error) {
	return f(ctx, q, from, to)
}

// QueryBuilder turns a word/example/meaning triple into an image search
// query. Spanish queries are translated term by term: literal phrase
// translation tends to produce semantically correct but visually weak
// search terms, while concrete-noun translation hits real photos.
type QueryBuilder struct {
	cfg        *config.Config
	translator Translator
}

func NewQueryBuilder(cfg *config.Config, translator Translator) QueryBuilder {
	return QueryBuilder{cfg: cfg, translator: translator}
}

// Build derives the search text. The example drives it unless it is the
// "not found" sentinel, in which case the meaning does.
func (b QueryBuilder) Build(ctx context.Context, word, example, meaning string, lang config.Language) string {
	base := example
	if base == "" || lexicon.IsExampleSentinel(base) {
		base = meaning
	}
	keywords := b.extractKeywords(base, lang)
	full := strings.TrimSpace(word + " " + strings.Join(keywords, " "))

	if lang != config.Spanish {
		return full
	}

	tokens := strings.Fields(full)
	if len(tokens) == 1 {
		return b.translateTerm(ctx, tokens[0])
	}

	limit := b.cfg.MaxKeywords
	if len(tokens) < limit {
		limit = len(tokens)
	}
	translated := make([]string, 0, limit+1)
	for _, token := range tokens[:limit] {
		translated = append(translated, b.translateTerm(ctx, token))
	}
	query := strings.Join(translated, " ")

	// A short full-phrase translation still helps when the term-by-term
	// pass missed the combined sense.
	if phrase, err := b.translator.Translate(ctx, full, string(config.Spanish), string(config.English)); err == nil {
		phrase = strings.TrimSpace(phrase)
		if phrase != "" && len(strings.Fields(phrase)) <= b.cfg.MaxKeywords &&
			!strings.Contains(strings.ToLower(query), strings.ToLower(phrase)) {
			query = query + " " + phrase
		}
	}
	return query
}

// translateTerm prefers the visually strong table over machine translation
// and falls back to the term itself when the service has no answer.
func (b QueryBuilder) translateTerm(ctx context.Context, term string) string {
	if strong, ok := b.cfg.StrongTranslations[strings.ToLower(term)]; ok {
		return strong
	}
	translated, err := b.translator.Translate(ctx, term, string(config.Spanish), string(config.English))
	if err != nil || strings.TrimSpace(translated) == "" {
		return term
	}
	return strings.TrimSpace(translated)
}

// extractKeywords removes stopwords and punctuation from text. Languages
// without a registered stopword list use the English one.
func (b QueryBuilder) extractKeywords(text string, lang config.Language) []string {
	stops, ok := b.cfg.Stopwords[lang]
	if !ok {
		stops = b.cfg.Stopwords[config.English]
	}
	var keywords []string
	for _, field := range strings.Fields(text) {
		token := strings.Trim(field, `.,;:!?"'()¿¡`)
		if token == "" {
			continue
		}
		if _, stop := stops[strings.ToLower(token)]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
