package spanishdict

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
	examplesURL = "https://www.spanishdict.com/examples/"
	userAgent   = "Mozilla/5.0"
)

// Client scrapes the SpanishDict examples page. Spanish-side sentences are
// marked with a lang attribute in the results markup.
type Client struct {
	client *http.Client
}

func NewClient(timeout time.Duration) Client {
	return Client{client: &http.Client{Timeout: timeout}}
}

// Examples returns the Spanish sentences on the examples page for word,
// in page order.
func (c Client) Examples(ctx context.Context, word string) ([]string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, examplesURL+url.PathEscape(word), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	query := url.Values{}
	query.Set("lang", "es")
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch spanishdict: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsuccessfull spanishdict response %v", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse spanishdict page: %w", err)
	}

	var sentences []string
	doc.Find(`span[lang="es"]`).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sentences = append(sentences, text)
		}
	})
	return sentences, nil
}
