package mymemory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrUnknown = errors.New("failed to translate query")

const apiURL = "https://api.mymemory.translated.net/get"

// Client implements integration with mymemory translations API
// docs: https://mymemory.translated.net/doc/spec.php
type Client struct {
	apiToken *string
	client   *http.Client
}

// Translate returns the machine translation of q between the given language
// pair. An answer that merely echoes the input counts as unknown.
func (c Client) Translate(ctx context.Context, q, from, to string) (TranslationResponse, error) {
	var result TranslationResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	query := req.URL.Query()
	query.Add("q", q)
	query.Add("langpair", fmt.Sprintf("%s|%s", from, to))
	if c.apiToken != nil {
		query.Add("key", *c.apiToken)
	}
	req.URL.RawQuery = query.Encode()
	response, err := c.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to execute request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		log.Error().
			Str("status", response.Status).
			Str("body", string(body)).
			Msg("unsuccessfull response from mymemory translated API")
		return result, fmt.Errorf("unsuccessfull API response %v", response.StatusCode)
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if strings.EqualFold(result.Result.Text, q) {
		return result, ErrUnknown
	}
	return result, nil
}

// NewClient creates a Client with a default HTTP client. apiToken may be
// nil for the anonymous quota.
func NewClient(timeout time.Duration, apiToken *string) Client {
	return Client{apiToken: apiToken, client: &http.Client{Timeout: timeout}}
}
