package spanishdict

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePage = `<html><body>
<div class="examples">
  <span lang="es">El gato duerme en la cocina.</span>
  <span lang="en">The cat sleeps in the kitchen.</span>
  <span lang="es">  Mi gato es muy viejo.  </span>
  <span lang="es"></span>
</div>
</body></html>`

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestExamples(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/examples/gato", req.URL.Path)
				assert.Equal(t, "es", req.URL.Query().Get("lang"))
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(bytes.NewBufferString(examplePage)),
					Header:     make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		sentences, err := client.Examples(context.Background(), "gato")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"El gato duerme en la cocina.",
			"Mi gato es muy viejo.",
		}, sentences)
	})
	t.Run("http error", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: 403,
					Body:       io.NopCloser(bytes.NewBufferString(``)),
					Header:     make(http.Header),
				}, nil
			}),
		}
		client := Client{client: httpClient}
		_, err := client.Examples(context.Background(), "gato")

		assert.Error(t, err)
	})
}
