package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/lexicon"
)

// WordSearcher runs the full word resolution pipeline.
type WordSearcher interface {
	Search(ctx context.Context, word string, lang config.Language) (lexicon.Record, error)
}

// searchService implements the word search endpoint
type searchService struct {
	cfg      *config.Config
	searcher WordSearcher
}

type errorResponse struct {
	Error string `json:"error"`
}

// SearchWord handles GET /search?word=&lang=
func (s searchService) SearchWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	lang := config.Language(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))))
	if lang == "" {
		lang = config.English
	}
	if word == "" {
		writeError(w, http.StatusBadRequest, "Missing word parameter")
		return
	}
	if !s.cfg.Supported(lang) {
		writeError(w, http.StatusBadRequest, "Language '"+string(lang)+"' is not supported")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.SearchTimeout)
	defer cancel()

	record, err := s.searcher.Search(ctx, word, lang)
	if err != nil {
		status, msg := searchErrorStatus(err, word, lang)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("word", word).Str("lang", string(lang)).Msg("word search failed")
		}
		writeError(w, status, msg)
		return
	}
	writeJSON(w, record)
}

func searchErrorStatus(err error, word string, lang config.Language) (int, string) {
	switch {
	case errors.Is(err, lexicon.ErrEmptyWord),
		errors.Is(err, lexicon.ErrUnsupportedLanguage),
		errors.Is(err, lexicon.ErrInvalidCharacters),
		errors.Is(err, lexicon.ErrWrongLanguage):
		return http.StatusBadRequest, "The word '" + word + "' is not valid for language '" + string(lang) + "'"
	case errors.Is(err, lexicon.ErrNotFound):
		return http.StatusNotFound, "No information found for '" + word + "' in '" + string(lang) + "'"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "Search for '" + word + "' timed out"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(response); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	writeJSON(w, errorResponse{Error: message})
}
