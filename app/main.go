package main

import (
	"context"
	"os"

	"github.com/SebaMedina172/Anki-App/app/api"
	"github.com/SebaMedina172/Anki-App/app/clients/ankiconnect"
	"github.com/SebaMedina172/Anki-App/app/clients/dictionaryapi"
	"github.com/SebaMedina172/Anki-App/app/clients/linguee"
	"github.com/SebaMedina172/Anki-App/app/clients/mymemory"
	"github.com/SebaMedina172/Anki-App/app/clients/pixabay"
	"github.com/SebaMedina172/Anki-App/app/clients/spanishdict"
	"github.com/SebaMedina172/Anki-App/app/clients/tatoeba"
	"github.com/SebaMedina172/Anki-App/app/clients/wiktionary"
	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/images"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
	"github.com/SebaMedina172/Anki-App/app/media"
	"github.com/SebaMedina172/Anki-App/app/sources"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
)

func main() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var opts config.Options
	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		return
	}
	cfg := config.Load(opts)

	browser := tatoeba.NewBrowser(cfg.BrowserTimeout, 1)
	defer browser.Close()

	clients := sources.Clients{
		Dictionary:  dictionaryapi.NewClient(cfg.AdapterTimeout),
		Wiktionary:  wiktionary.NewClient(cfg.AdapterTimeout),
		TatoebaAPI:  tatoeba.NewAPIClient(cfg.AdapterTimeout),
		Tatoeba:     browser,
		Linguee:     linguee.NewClient(cfg.AdapterTimeout),
		SpanishDict: spanishdict.NewClient(cfg.AdapterTimeout),
	}

	resolver := lexicon.NewExampleResolver(cfg, sources.Chains(clients))
	lookup := lexicon.NewLookup(cfg, sources.Primaries(clients), resolver)

	translator := images.TranslateFunc(newTranslator(cfg))
	builder := images.NewQueryBuilder(cfg, translator)
	imageResolver := images.NewResolver(
		cfg,
		pixabay.NewClient(cfg.PixabayKey, cfg.MaxImages, cfg.AdapterTimeout),
		translator,
	)

	store := media.NewStore(media.ResolvePath(cfg.MediaPath), cfg.AdapterTimeout)
	log.Info().Str("path", store.Dir()).Msg("media directory resolved")

	server := api.NewServer(
		cfg, lookup, builder, imageResolver, store,
		ankiconnect.NewClient(cfg.AdapterTimeout),
	)
	log.Info().Int("port", opts.Port).Msg("starting API server")
	if err := server.Run(opts.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to run API server")
	}
}

// newTranslator exposes the translation client as the single opaque call
// the image pipeline expects.
func newTranslator(cfg *config.Config) func(ctx context.Context, q, from, to string) (string, error) {
	client := mymemory.NewClient(cfg.AdapterTimeout, nil)
	return func(ctx context.Context, q, from, to string) (string, error) {
		resp, err := client.Translate(ctx, q, from, to)
		if err != nil {
			return "", err
		}
		return resp.Result.Text, nil
	}
}
