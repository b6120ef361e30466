package tatoeba

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/SebaMedina172/Anki-App/app/config"
)

// sentenceSelector matches the rendered sentence texts; the wait target and
// the extraction script must agree on it.
const sentenceSelector = "div.sentence div.text"

const sentenceListJS = `Array.from(document.querySelectorAll('` + sentenceSelector + `'))
	.map(el => el.textContent.trim())
	.filter(t => t.length > 0)`

// Browser scrapes the client-rendered Tatoeba search results page. The
// Chrome allocator is created once and shared; each call opens a fresh tab
// in it. A semaphore bounds concurrent tabs so a burst of requests cannot
// fork a browser per call.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	sem      chan struct{}
	timeout  time.Duration
}

// NewBrowser starts the shared headless allocator. Callers must Close it.
func NewBrowser(timeout time.Duration, maxTabs int) *Browser {
	if maxTabs < 1 {
		maxTabs = 1
	}
	allocCtx, cancel := chromedp.NewExecAllocator(
		context.Background(),
		chromedp.DefaultExecAllocatorOptions[:]...,
	)
	return &Browser{
		allocCtx: allocCtx,
		cancel:   cancel,
		sem:      make(chan struct{}, maxTabs),
		timeout:  timeout,
	}
}

// Close tears the shared browser process down.
func (b *Browser) Close() {
	b.cancel()
}

// Sentences loads the search results page for word and returns the rendered
// sentence texts.
func (b *Browser) Sentences(ctx context.Context, word string, lang config.Language) ([]string, error) {
	select {
	case b.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-b.sem }()

	code := langCodes[lang]
	pageURL := fmt.Sprintf(
		"https://tatoeba.org/en/sentences/search?query=%s&from=%s&to=%s",
		url.QueryEscape(word), code, code,
	)

	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	// Propagate caller cancellation into the tab.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-tabCtx.Done():
		}
	}()

	// The result list is filled in by XHR after load, so wait for the
	// sentences themselves; a page with no results runs into the tab
	// timeout, which the caller treats like any other source failure.
	var sentences []string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(sentenceSelector),
		chromedp.Evaluate(sentenceListJS, &sentences),
	)
	if err != nil {
		return nil, fmt.Errorf("render tatoeba page: %w", err)
	}
	return sentences, nil
}
