package images

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
)

func testConfig() *config.Config {
	return config.Load(config.Options{AnkiConnectURL: "http://localhost:8765", SearchTimeout: 75})
}

func staticTranslator(table map[string]string) TranslateFunc {
	return func(_ context.Context, q, _, _ string) (string, error) {
		if translated, ok := table[q]; ok {
			return translated, nil
		}
		return "", errors.New("unknown phrase")
	}
}

func TestBuildEnglish(t *testing.T) {
	builder := NewQueryBuilder(testConfig(), staticTranslator(nil))

	t.Run("keywords from example", func(t *testing.T) {
		got := builder.Build(context.Background(), "cat", "The cat sat on a red mat", "a feline", config.English)
		assert.Equal(t, "cat cat sat red mat", got)
	})
	t.Run("falls back to meaning on sentinel", func(t *testing.T) {
		got := builder.Build(context.Background(), "cat", lexicon.ExampleNotFoundEN, "a small domestic feline", config.English)
		assert.Equal(t, "cat small domestic feline", got)
	})
	t.Run("word alone when nothing else", func(t *testing.T) {
		got := builder.Build(context.Background(), "cat", "", "", config.English)
		assert.Equal(t, "cat", got)
	})
}

func TestBuildSpanish(t *testing.T) {
	cfg := testConfig()

	t.Run("single token uses strong table", func(t *testing.T) {
		builder := NewQueryBuilder(cfg, staticTranslator(nil))
		got := builder.Build(context.Background(), "gato", "", "", config.Spanish)
		assert.Equal(t, "cat", got)
	})
	t.Run("single token falls back to machine translation", func(t *testing.T) {
		builder := NewQueryBuilder(cfg, staticTranslator(map[string]string{"abrigo": "coat"}))
		got := builder.Build(context.Background(), "abrigo", "", "", config.Spanish)
		assert.Equal(t, "coat", got)
	})
	t.Run("single token survives translation failure", func(t *testing.T) {
		builder := NewQueryBuilder(cfg, staticTranslator(nil))
		got := builder.Build(context.Background(), "murciélago", "", "", config.Spanish)
		assert.Equal(t, "murciélago", got)
	})
	t.Run("multi token translates terms individually", func(t *testing.T) {
		builder := NewQueryBuilder(cfg, staticTranslator(map[string]string{
			"duerme": "sleeps",
		}))
		got := builder.Build(context.Background(), "gato", "El gato duerme", "", config.Spanish)
		// word + keywords = "gato gato duerme"; strong table turns gato
		// into cat, the verb goes through the translator.
		assert.Equal(t, "cat cat sleeps", got)
	})
	t.Run("appends short uncovered phrase translation", func(t *testing.T) {
		builder := NewQueryBuilder(cfg, staticTranslator(map[string]string{
			"duerme":           "rests",
			"gato gato duerme": "sleeping cat",
		}))
		got := builder.Build(context.Background(), "gato", "El gato duerme", "", config.Spanish)
		assert.Equal(t, "cat cat rests sleeping cat", got)
	})
}

func TestExtractKeywords(t *testing.T) {
	builder := NewQueryBuilder(testConfig(), staticTranslator(nil))

	t.Run("removes english stopwords", func(t *testing.T) {
		got := builder.extractKeywords("the cat is on a mat", config.English)
		assert.Equal(t, []string{"cat", "mat"}, got)
	})
	t.Run("removes spanish stopwords", func(t *testing.T) {
		got := builder.extractKeywords("el gato duerme en la casa", config.Spanish)
		assert.Equal(t, []string{"gato", "duerme", "casa"}, got)
	})
	t.Run("strips punctuation", func(t *testing.T) {
		got := builder.extractKeywords("cat, mat! ¿casa?", config.English)
		assert.Equal(t, []string{"cat", "mat", "casa"}, got)
	})
	t.Run("unregistered language falls back to english list", func(t *testing.T) {
		got := builder.extractKeywords("the cat sat", config.Language("de"))
		assert.Equal(t, []string{"cat", "sat"}, got)
	})
}
