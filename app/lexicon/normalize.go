package lexicon

import (
	"regexp"
	"strings"

	"github.com/SebaMedina172/Anki-App/app/config"
)

var (
	templateRe   = regexp.MustCompile(`\{\{[^}]*\}\}`)
	citationRe   = regexp.MustCompile(`\[[^\]]*\]`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)

	// Characters that survive cleaning: letters of both supported scripts,
	// digits and plain sentence punctuation.
	allowedRe = regexp.MustCompile(`[^A-Za-z0-9ÁÉÍÓÚÜÑáéíóúüñ '",.;:()!?¿¡-]`)

	bareNumberingRe = regexp.MustCompile(`^\s*\d+[.)]?\s*$`)
	bareBulletRe    = regexp.MustCompile(`^\s*[•*·-]+\s*$`)
	urlRe           = regexp.MustCompile(`https?://|www\.`)
)

// sectionLabels are headings that scrapers sometimes hand back as if they
// were content.
var sectionLabels = []string{
	"pronunciación", "pronunciation", "etimología", "etymology",
	"noun", "verb", "adjective", "adverb", "sustantivo", "verbo",
	"adjetivo", "adverbio", "ejemplos", "examples", "referencias",
	"references", "traducciones", "translations",
}

// templatePhrases mark text that leaked out of a wiki template rather than
// a real sentence.
var templatePhrases = []string{
	"{{", "}}", "[[", "]]", "thumb|", "plantilla:", "template:",
	"categoría:", "category:",
}

const minCleanedLen = 3

// Cleaner normalizes raw scraped text and rejects non-content strings.
type Cleaner struct {
	cfg *config.Config
}

func NewCleaner(cfg *config.Config) Cleaner {
	return Cleaner{cfg: cfg}
}

// Clean trims raw, cuts it at the first "extra info" marker, strips markup
// leftovers and disallowed characters, and collapses whitespace. The second
// return value is false when nothing useful survived. Idempotent.
func (c Cleaner) Clean(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	s = c.cutAtMarkers(s)

	// Translation suffixes: bilingual sites append the other language after
	// a dash separator.
	if idx := strings.Index(s, "—"); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, " - "); idx >= 0 {
		s = s[:idx]
	}

	s = templateRe.ReplaceAllString(s, "")
	s = citationRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "�", "")
	s = allowedRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	// Collapsing may have produced a fresh " - " separator; cut again so a
	// second Clean is a no-op.
	if idx := strings.Index(s, " - "); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if len([]rune(s)) < minCleanedLen {
		return "", false
	}
	return s, true
}

func (c Cleaner) cutAtMarkers(s string) string {
	lower := strings.ToLower(s)
	cut := len(s)
	for _, marker := range c.cfg.CutMarkers {
		if idx := strings.Index(lower, marker); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return s[:cut]
}

// IsMetadata reports whether text looks like page furniture (section label,
// numbering, bullet, markup residue) rather than content.
func (c Cleaner) IsMetadata(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range templatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, label := range sectionLabels {
		if lower == label || lower == label+":" {
			return true
		}
	}
	return bareNumberingRe.MatchString(trimmed) || bareBulletRe.MatchString(trimmed)
}

// Acceptable applies the example acceptance test: the candidate must contain
// word case-insensitively, have a word count within the configured bounds,
// carry no template/URL residue and not read like the other language.
func (c Cleaner) Acceptable(text, word string, lang config.Language) bool {
	if !strings.Contains(strings.ToLower(text), strings.ToLower(word)) {
		return false
	}
	count := len(strings.Fields(text))
	if count < c.cfg.MinExampleWords || count > c.cfg.MaxExampleWords {
		return false
	}
	if c.contaminated(text, lang) {
		return false
	}
	return !c.rejected(text)
}

// contaminated counts the other language's indicator words in text. More
// than one means a bilingual source leaked its other-side sentence into this
// chain.
func (c Cleaner) contaminated(text string, lang config.Language) bool {
	indicators := c.cfg.Indicators[c.cfg.Other(lang)]
	if len(indicators) == 0 {
		return false
	}
	padded := " " + strings.ToLower(text) + " "
	count := 0
	for _, word := range indicators {
		count += strings.Count(padded, " "+word+" ")
	}
	return count > 1
}

// AcceptablePrimary is the looser check applied to the primary dictionary
// source's own example: only a minimum word count.
func (c Cleaner) AcceptablePrimary(text string) bool {
	if len(strings.Fields(text)) <= c.cfg.PrimaryMinWords {
		return false
	}
	return !c.rejected(text)
}

func (c Cleaner) rejected(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range templatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return urlRe.MatchString(lower) || strings.Contains(text, "@")
}
