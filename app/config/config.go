package config

import (
	"regexp"
	"time"
)

// Language is a supported lookup language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Options holds the values parsed from flags/environment in main.
type Options struct {
	PixabayKey     string `long:"pixabay-key" env:"PIXABAY_API_KEY" description:"Pixabay API key"`
	MediaPath      string `long:"media-path" env:"ANKI_MEDIA_PATH" description:"Override for the Anki media directory"`
	AnkiConnectURL string `long:"anki-url" env:"ANKI_CONNECT_URL" default:"http://localhost:8765" description:"Default AnkiConnect URL"`
	SearchTimeout  int    `long:"search-timeout" env:"SEARCH_TIMEOUT" default:"75" description:"Whole-request timeout for word search (seconds)"`
	Port           int    `long:"port" env:"PORT" default:"3001" description:"Port to listen on"`
}

// Config is the process-wide read-only configuration. It is built once at
// startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	Languages []Language

	// Alphabets maps a language to the pattern a word must fully match.
	Alphabets map[Language]*regexp.Regexp

	// Stopwords per language, used by the image query builder. Languages
	// without an entry fall back to English.
	Stopwords map[Language]map[string]struct{}

	// CommonWords lists frequent words of each language, used to flag a
	// word submitted under the other language. Heuristic and incomplete.
	CommonWords map[Language]map[string]struct{}

	// StrongTranslations maps common concrete Spanish nouns to English
	// terms that search well on image APIs. Preferred over machine
	// translation when building image queries.
	StrongTranslations map[string]string

	// Indicators are function words of a language frequent enough that
	// more than one of them in a candidate sentence means the sentence is
	// written in that language. Used to reject sentences contaminated by
	// the other language.
	Indicators map[Language][]string

	// CutMarkers are "extra info" section labels; cleaned text is cut at
	// the first occurrence of any of them.
	CutMarkers []string

	// Example acceptance bounds. The primary dictionary example only has
	// to clear PrimaryMinWords.
	MinExampleWords int
	MaxExampleWords int
	PrimaryMinWords int

	// MaxKeywords caps how many keywords a Spanish image query translates
	// individually.
	MaxKeywords int

	MaxImages int

	PixabayKey     string
	MediaPath      string
	AnkiConnectURL string

	SearchTimeout  time.Duration
	AdapterTimeout time.Duration
	BrowserTimeout time.Duration
}

var alphabets = map[Language]*regexp.Regexp{
	English: regexp.MustCompile(`^[A-Za-z'-]+( [A-Za-z'-]+)*$`),
	Spanish: regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ'-]+( [A-Za-zÁÉÍÓÚÜÑáéíóúüñ'-]+)*$`),
}

var stopwords = map[Language][]string{
	English: {
		"a", "an", "the", "and", "or", "but", "if", "of", "at", "by",
		"for", "with", "about", "to", "from", "in", "on", "is", "are",
		"was", "were", "be", "been", "being", "it", "its", "this",
		"that", "these", "those", "as", "into", "than", "then", "so",
		"too", "very", "can", "will", "just", "not", "no", "he", "she",
		"they", "we", "you", "his", "her", "their", "our", "your",
	},
	Spanish: {
		"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o",
		"pero", "si", "de", "del", "al", "a", "en", "por", "para", "con",
		"sin", "sobre", "entre", "que", "como", "cuando", "donde", "es",
		"son", "era", "eran", "ser", "estar", "está", "están", "fue",
		"muy", "más", "menos", "no", "sí", "se", "su", "sus", "lo", "le",
		"les", "mi", "tu", "nos",
	},
}

// commonWords lists function words frequent enough that their appearance as
// a dictionary query almost always means the wrong language was selected.
var commonWords = map[Language][]string{
	English: {
		"the", "and", "you", "that", "have", "for", "not", "with",
		"this", "but", "his", "from", "they", "she", "will", "would",
		"there", "their", "what", "about",
	},
	Spanish: {
		"que", "los", "las", "una", "para", "con", "por", "como",
		"pero", "sus", "les", "está", "más", "este", "esta", "entre",
		"cuando", "también", "hasta", "desde",
	},
}

// strongTranslations maps common concrete Spanish nouns to the English term
// that yields relevant image-search hits. Literal machine translation often
// drifts toward visually weak synonyms for these.
var strongTranslations = map[string]string{
	"gato":     "cat",
	"perro":    "dog",
	"casa":     "house",
	"sol":      "sun",
	"luna":     "moon",
	"árbol":    "tree",
	"flor":     "flower",
	"coche":    "car",
	"carro":    "car",
	"libro":    "book",
	"manzana":  "apple",
	"agua":     "water",
	"fuego":    "fire",
	"pájaro":   "bird",
	"pez":      "fish",
	"mesa":     "table",
	"silla":    "chair",
	"puerta":   "door",
	"ventana":  "window",
	"playa":    "beach",
	"montaña":  "mountain",
	"caballo":  "horse",
	"estrella": "star",
	"nube":     "cloud",
	"lluvia":   "rain",
	"nieve":    "snow",
	"pan":      "bread",
	"leche":    "milk",
	"niño":     "child",
	"ciudad":   "city",
}

// indicators lists the words counted by the contamination check. Only
// Spanish has one: bilingual sites serving the English chain frequently leak
// Spanish-side sentences, while the reverse leak is rare.
var indicators = map[Language][]string{
	Spanish: {"el", "la", "de", "que", "en"},
}

var cutMarkers = []string{
	"synonyms", "antonyms", "see also", "related terms", "derived terms",
	"compounds", "sinónimos", "antónimos", "véase también", "relacionados",
	"derivados", "ejemplo:", "uso:",
}

// Load builds the immutable configuration from parsed options.
func Load(opts Options) *Config {
	cfg := &Config{
		Languages:          []Language{English, Spanish},
		Alphabets:          alphabets,
		Stopwords:          make(map[Language]map[string]struct{}, len(stopwords)),
		CommonWords:        make(map[Language]map[string]struct{}, len(commonWords)),
		StrongTranslations: strongTranslations,
		Indicators:         indicators,
		CutMarkers:         cutMarkers,
		MinExampleWords:    4,
		MaxExampleWords:    20,
		PrimaryMinWords:    3,
		MaxKeywords:        3,
		MaxImages:          5,
		PixabayKey:         opts.PixabayKey,
		MediaPath:          opts.MediaPath,
		AnkiConnectURL:     opts.AnkiConnectURL,
		SearchTimeout:      time.Duration(opts.SearchTimeout) * time.Second,
		AdapterTimeout:     10 * time.Second,
		BrowserTimeout:     20 * time.Second,
	}
	for lang, words := range stopwords {
		cfg.Stopwords[lang] = toSet(words)
	}
	for lang, words := range commonWords {
		cfg.CommonWords[lang] = toSet(words)
	}
	return cfg
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Supported reports whether lang is one of the configured languages.
func (c *Config) Supported(lang Language) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Other returns the opposite supported language. With exactly two supported
// languages the cross-language checks only ever need the counterpart.
func (c *Config) Other(lang Language) Language {
	if lang == English {
		return Spanish
	}
	return English
}
