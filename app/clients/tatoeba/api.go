package tatoeba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SebaMedina172/Anki-App/app/config"
)

const apiURL = "https://tatoeba.org/en/api_v0/search"

// langCodes maps lookup languages to the ISO-639-3 codes the sentence bank
// filters on.
var langCodes = map[config.Language]string{
	config.English: "eng",
	config.Spanish: "spa",
}

// SearchResponse holds the sentence-bank API response
type SearchResponse struct {
	Results []Sentence `json:"results"`
}

type Sentence struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// APIClient queries the Tatoeba JSON search API.
type APIClient struct {
	client *http.Client
}

func NewAPIClient(timeout time.Duration) APIClient {
	return APIClient{client: &http.Client{Timeout: timeout}}
}

// Search returns candidate sentences in lang containing word, best first.
func (c APIClient) Search(ctx context.Context, word string, lang config.Language) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	query := url.Values{}
	query.Set("query", word)
	query.Set("from", langCodes[lang])
	query.Set("orphans", "no")
	query.Set("unapproved", "no")
	req.URL.RawQuery = query.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tatoeba API: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsuccessfull API response %v", resp.StatusCode)
	}
	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	sentences := make([]string, 0, len(result.Results))
	for _, s := range result.Results {
		if s.Text != "" {
			sentences = append(sentences, s.Text)
		}
	}
	return sentences, nil
}
