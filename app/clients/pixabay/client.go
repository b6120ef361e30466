package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const apiURL = "https://pixabay.com/api/"

// Client implements integration with the Pixabay image search API
// docs: https://pixabay.com/api/docs/
type Client struct {
	apiKey  string
	perPage int
	client  *http.Client
}

// Search returns up to perPage photo hits for query, keeping only hits
// that carry both a preview and a full-size URL.
func (c Client) Search(ctx context.Context, query string, page int) ([]Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("per_page", strconv.Itoa(c.perPage))
	values.Set("page", strconv.Itoa(page))
	values.Set("image_type", "photo")
	values.Set("safesearch", "true")
	req.URL.RawQuery = values.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pixabay: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessfull response from pixabay")
		return nil, fmt.Errorf("unsuccessfull API response %v", resp.StatusCode)
	}
	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	images := make([]Image, 0, len(result.Hits))
	for _, hit := range result.Hits {
		full := hit.LargeImageURL
		if full == "" {
			full = hit.WebformatURL
		}
		if hit.PreviewURL == "" || full == "" {
			continue
		}
		images = append(images, Image{ID: hit.ID, PreviewURL: hit.PreviewURL, FullURL: full})
	}
	return images, nil
}

// NewClient creates a Client with a default HTTP client.
func NewClient(apiKey string, perPage int, timeout time.Duration) Client {
	return Client{apiKey: apiKey, perPage: perPage, client: &http.Client{Timeout: timeout}}
}
