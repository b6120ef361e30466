package linguee

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	searchURL = "https://www.linguee.com/english-spanish/search"
	userAgent = "Mozilla/5.0"
)

// Client scrapes example sentences from Linguee's bilingual search results.
type Client struct {
	client *http.Client
}

func NewClient(timeout time.Duration) Client {
	return Client{client: &http.Client{Timeout: timeout}}
}

// Example returns the first result line that mentions word and is longer
// than a few tokens, or "" when the page has none.
func (c Client) Example(ctx context.Context, word string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	query := url.Values{}
	query.Set("source", "auto")
	query.Set("query", word)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch linguee: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsuccessfull linguee response %v", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse linguee page: %w", err)
	}

	var example string
	doc.Find(".example_lines .line").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" && len(strings.Fields(text)) > 3 &&
			strings.Contains(strings.ToLower(text), strings.ToLower(word)) {
			example = text
			return false
		}
		return true
	})
	return example, nil
}
