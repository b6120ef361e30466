package mymemory

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

const exampleResponse = `{
	"responseData": {
	  "translatedText": "cat",
	  "match": 1
	},
	"quotaFinished": false,
	"mtLangSupported": null,
	"responseDetails": "",
	"responseStatus": 200,
	"responderId": "228",
	"exception_code": null,
	"matches": [
	  {
		"id": "589140219",
		"segment": "gato",
		"translation": "cat",
		"source": "es-ES",
		"target": "en-GB",
		"quality": "74",
		"reference": null,
		"usage-count": 2,
		"subject": "All",
		"match": 1
	  }
	]
}`

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestTranslate(t *testing.T) {
	validURL := "https://api.mymemory.translated.net/get?langpair=es%7Cen&q=gato"
	word := "gato"
	t.Run("success", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, validURL, req.URL.String())
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(bytes.NewBufferString(exampleResponse)),
					Header:     make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		translation, err := client.Translate(context.Background(), word, "es", "en")

		assert.NoError(t, err)
		expected := TranslationResponse{
			Result: TranslationResult{Text: "cat", Match: 1},
			Matches: []TranslationMatch{
				{
					ID:          "589140219",
					Segment:     "gato",
					Translation: "cat",
					Source:      "es-ES",
					Target:      "en-GB",
					Quality:     "74",
					Reference:   nil,
					UsageCount:  2,
					Subject:     "All",
					Match:       1,
				},
			},
			QuotaFinished:   false,
			ResponseDetails: "",
			ResponseStatus:  200,
			ResponderID:     "228",
			ExceptionCode:   nil,
		}
		assert.Equal(t, expected, translation)
	})
	t.Run("request error", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{}, http.ErrServerClosed
			}),
		}
		client := Client{client: httpClient}
		translation, err := client.Translate(context.Background(), word, "es", "en")
		assert.ErrorIs(t, err, http.ErrServerClosed)
		assert.Equal(t, TranslationResponse{}, translation)
	})
	t.Run("invalid response", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(bytes.NewBufferString("Invalid JSON")),
					Header:     make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		_, err := client.Translate(context.Background(), word, "es", "en")
		assert.Error(t, err)
	})
	t.Run("error status", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: 400,
					Body:       io.NopCloser(bytes.NewBufferString(`{"status": "ERROR"}`)),
					Header:     make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		_, err := client.Translate(context.Background(), word, "es", "en")
		assert.Error(t, err)
	})
	t.Run("echoed input means unknown", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: 200,
					Body: io.NopCloser(
						bytes.NewBufferString(`{"responseData": {"translatedText": "Gato", "match": 1}}`),
					),
					Header: make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		_, err := client.Translate(context.Background(), word, "es", "en")
		assert.ErrorIs(t, err, ErrUnknown)
	})
}
