package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var ErrNotFound = errors.New("no Spanish entry found")

const (
	baseURL   = "https://es.wiktionary.org/wiki/"
	userAgent = "AnkiApp/1.0 (https://github.com/SebaMedina172/Anki-App)"
)

// Entry is what the Spanish Wiktionary page yields for a word. Any field
// may be empty; all empty means the page exists but holds nothing usable.
type Entry struct {
	Meaning string
	Example string
	IPA     string
}

// Client scrapes es.wiktionary.org article pages. Article titles are
// case-sensitive, so a miss on the word as given is retried with the first
// letter capitalized.
type Client struct {
	client *http.Client
}

func NewClient(timeout time.Duration) Client {
	return Client{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the first definition, example and IPA for word.
func (c Client) Fetch(ctx context.Context, word string) (Entry, error) {
	entry, err := c.scrape(ctx, word)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}
	capitalized := capitalize(word)
	if capitalized == word {
		return Entry{}, ErrNotFound
	}
	return c.scrape(ctx, capitalized)
}

func (c Client) scrape(ctx context.Context, title string) (Entry, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, baseURL+url.PathEscape(title), nil,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch wiktionary page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Entry{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("unsuccessfull wiktionary response %v", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Entry{}, fmt.Errorf("parse wiktionary page: %w", err)
	}
	return parse(doc)
}

func parse(doc *goquery.Document) (Entry, error) {
	var entry Entry

	start := sectionHeading(doc, "h2", "Español")
	if start.Length() > 0 {
		entry = walkSection(start)
	} else {
		// No Español heading: fall back to the first definition list
		// anywhere on the page.
		entry.Meaning = firstDefinitionAnywhere(doc)
	}

	if entry.IPA == "" {
		entry.IPA = doc.Find("table.pron-graf span.IPA").First().Text()
	}

	if entry.Meaning == "" && entry.Example == "" && entry.IPA == "" {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// sectionHeading locates a heading of the given level whose headline text
// matches exactly. Modern MediaWiki wraps headings in div.mw-heading, in
// which case the wrapper is the sibling-walkable node.
func sectionHeading(doc *goquery.Document, level, text string) *goquery.Selection {
	heading := doc.Find(level + " .mw-headline").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == text
	}).Closest(level)
	if heading.Length() == 0 {
		heading = doc.Find(level + "#" + text).First()
	}
	if heading.Length() == 0 {
		return heading
	}
	if parent := heading.Parent(); parent.HasClass("mw-heading") {
		return parent.First()
	}
	return heading.First()
}

// walkSection visits the siblings between the Español heading and the next
// h2, picking up the first ordered-list definition, its nested example and
// the IPA under the Pronunciación subsection.
func walkSection(start *goquery.Selection) Entry {
	var entry Entry
	inPronunciation := false
	for sel := start.Next(); sel.Length() > 0; sel = sel.Next() {
		name := goquery.NodeName(sel)
		if name == "h2" || sel.HasClass("mw-heading2") {
			break
		}
		if name == "h3" || sel.HasClass("mw-heading3") {
			inPronunciation = strings.Contains(headlineText(sel), "Pronunciación")
		}
		if entry.IPA == "" {
			if inPronunciation || sel.Is("table.pron-graf") {
				entry.IPA = strings.TrimSpace(sel.Find("span.IPA").First().Text())
			}
		}
		if entry.Meaning == "" && name == "ol" {
			li := sel.ChildrenFiltered("li").First()
			if li.Length() > 0 {
				entry.Meaning = directText(li)
				entry.Example = strings.TrimSpace(li.Find("ul li").First().Text())
			}
		}
	}
	return entry
}

func headlineText(sel *goquery.Selection) string {
	if headline := sel.Find(".mw-headline"); headline.Length() > 0 {
		return strings.TrimSpace(headline.Text())
	}
	return strings.TrimSpace(sel.Text())
}

func firstDefinitionAnywhere(doc *goquery.Document) string {
	if dd := doc.Find("dl dd").First(); dd.Length() > 0 {
		return directText(dd)
	}
	if li := doc.Find("ol > li").First(); li.Length() > 0 {
		return directText(li)
	}
	return ""
}

// directText extracts the node's text while skipping nested example,
// synonym and antonym sub-lists.
func directText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode {
				switch child.Data {
				case "ul", "ol", "dl":
					continue
				}
			}
			collectText(child, &sb)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(node *html.Node, sb *strings.Builder) {
	if node.Type == html.TextNode {
		sb.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode {
		switch node.Data {
		case "ul", "ol", "dl", "style", "script":
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
