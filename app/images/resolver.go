package images

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SebaMedina172/Anki-App/app/clients/pixabay"
	"github.com/SebaMedina172/Anki-App/app/config"
)

const placeholderHost = "via.placeholder.com"

// Searcher is the live image-search backend.
type Searcher interface {
	Search(ctx context.Context, query string, page int) ([]pixabay.Image, error)
}

// Resolver runs the image fallback ladder: the built query, then a plain
// retranslation of the original query for Spanish, then the first token
// alone, then a synthetic placeholder. It never returns an empty slice.
type Resolver struct {
	cfg        *config.Config
	searcher   Searcher
	translator Translator
}

func NewResolver(cfg *config.Config, searcher Searcher, translator Translator) Resolver {
	return Resolver{cfg: cfg, searcher: searcher, translator: translator}
}

// Resolve returns image candidates for query. original is the query text
// before building, used for the retranslation step and embedded in the
// placeholder URL.
func (r Resolver) Resolve(ctx context.Context, query, original string, lang config.Language, page int) []pixabay.Image {
	if images := r.search(ctx, query, page); len(images) > 0 {
		return images
	}

	if lang == config.Spanish && r.translator != nil {
		translated, err := r.translator.Translate(ctx, original, string(config.Spanish), string(config.English))
		if err == nil && strings.TrimSpace(translated) != "" {
			if images := r.search(ctx, translated, page); len(images) > 0 {
				return images
			}
		}
	}

	if tokens := strings.Fields(query); len(tokens) > 1 {
		if images := r.search(ctx, tokens[0], page); len(images) > 0 {
			return images
		}
	}

	return []pixabay.Image{Placeholder(original)}
}

// search fails open: a transport error means zero results for this rung.
func (r Resolver) search(ctx context.Context, query string, page int) []pixabay.Image {
	results, err := r.searcher.Search(ctx, query, page)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("image search failed")
		return nil
	}
	images := results[:0]
	for _, img := range results {
		// A placeholder leaking back in must not count as a live hit.
		if strings.Contains(img.PreviewURL, placeholderHost) ||
			strings.Contains(img.FullURL, placeholderHost) {
			continue
		}
		images = append(images, img)
	}
	return images
}

// Placeholder builds the synthetic candidate embedding the query text for
// display.
func Placeholder(query string) pixabay.Image {
	u := "https://" + placeholderHost + "/300x200?text=" + url.QueryEscape(query)
	return pixabay.Image{PreviewURL: u, FullURL: u}
}
