package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SebaMedina172/Anki-App/app/clients/ankiconnect"
	"github.com/SebaMedina172/Anki-App/app/clients/pixabay"
	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/images"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
	"github.com/SebaMedina172/Anki-App/app/media"
)

func testConfig() *config.Config {
	return config.Load(config.Options{
		AnkiConnectURL: "http://localhost:8765",
		SearchTimeout:  5,
	})
}

// fakeWordSearcher returns a canned record or error.
type fakeWordSearcher struct {
	record lexicon.Record
	err    error
}

func (f fakeWordSearcher) Search(context.Context, string, config.Language) (lexicon.Record, error) {
	return f.record, f.err
}

// fakeImageSearcher maps queries to canned hits.
type fakeImageSearcher struct {
	results map[string][]pixabay.Image
}

func (f fakeImageSearcher) Search(_ context.Context, query string, _ int) ([]pixabay.Image, error) {
	return f.results[query], nil
}

// getTestServer returns a test server wired with the given fakes.
func getTestServer(t *testing.T, searcher WordSearcher, imgSearcher images.Searcher) (*httptest.Server, func()) {
	t.Helper()
	if searcher == nil {
		searcher = fakeWordSearcher{}
	}
	if imgSearcher == nil {
		imgSearcher = fakeImageSearcher{}
	}
	cfg := testConfig()
	translator := images.TranslateFunc(func(_ context.Context, q, _, _ string) (string, error) {
		return q, nil
	})
	server := NewServer(
		cfg,
		searcher,
		images.NewQueryBuilder(cfg, translator),
		images.NewResolver(cfg, imgSearcher, translator),
		media.NewStore(t.TempDir(), time.Second),
		ankiconnect.NewClient(time.Second),
	)
	srv := httptest.NewServer(server.router)
	return srv, srv.Close
}
