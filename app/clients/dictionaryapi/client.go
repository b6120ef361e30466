package dictionaryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("word not found")

const baseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

// Client implements integration with the free dictionary API
// docs: https://dictionaryapi.dev/
type Client struct {
	client *http.Client
}

// Get fetches all entries for word. Returns ErrNotFound on a 404 and also
// when the response decodes but carries no usable entries.
func (c Client) Get(ctx context.Context, word string) ([]WordResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, baseURL+url.PathEscape(word), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionaryapi.dev: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessfull response from dictionaryapi")
		return nil, fmt.Errorf("unsuccessfull API response %v", resp.StatusCode)
	}
	var items []WordResponse
	if err := json.Unmarshal(body, &items); err != nil {
		// The API answers some unknown words with an object instead of an
		// array; structurally unexpected means no data here.
		return nil, ErrNotFound
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

// FirstIPA returns the first phonetic transcription with non-empty text,
// checking the top-level phonetic field last.
func FirstIPA(items []WordResponse) string {
	for _, item := range items {
		for _, p := range item.Phonetics {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	for _, item := range items {
		if item.Phonetic != "" {
			return item.Phonetic
		}
	}
	return ""
}

// FirstDefinition returns the first sense's first definition, cut at any
// embedded "example:" marker, plus that definition's own example if present.
func FirstDefinition(items []WordResponse) (meaning, example string) {
	for _, item := range items {
		for _, m := range item.Meanings {
			for _, d := range m.Definitions {
				if d.Definition == "" {
					continue
				}
				meaning = d.Definition
				if idx := strings.Index(strings.ToLower(meaning), "example:"); idx >= 0 {
					meaning = meaning[:idx]
				}
				return strings.TrimSpace(meaning), d.Example
			}
		}
	}
	return "", ""
}

// NewClient creates a Client with a default HTTP client.
func NewClient(timeout time.Duration) Client {
	return Client{client: &http.Client{Timeout: timeout}}
}
