package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is the AnkiConnect automation payload
// docs: https://foosoft.net/projects/anki-connect/
type Request struct {
	Action  string          `json:"action"`
	Version int             `json:"version"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is relayed to the caller verbatim; AnkiConnect encodes its own
// errors in the error field.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// Client invokes a locally running AnkiConnect instance.
type Client struct {
	client *http.Client
}

func NewClient(timeout time.Duration) Client {
	return Client{client: &http.Client{Timeout: timeout}}
}

// Invoke posts req to the AnkiConnect instance at targetURL and returns the
// raw response body. The caller is responsible for having validated
// targetURL.
func (c Client) Invoke(ctx context.Context, targetURL string, req Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, targetURL, bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("invoke ankiconnect: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsuccessfull ankiconnect response %v", resp.StatusCode)
	}
	return body, nil
}
