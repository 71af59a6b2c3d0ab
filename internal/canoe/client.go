// Package canoe is a minimal client for the Canoe Software API, covering the
// three calls the export pipeline needs: the OAuth token exchange, the
// organization listing, and per-organization document data.
package canoe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every individual HTTP request issued by the client.
const DefaultTimeout = 30 * time.Second

// Client issues authenticated requests against the Canoe API. All requests
// made through one Client share its connection pool, so a document fan-out
// reuses connections across organizations.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given API root (no trailing slash)
// authorized by the given bearer token. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// getJSON performs an authorized GET and decodes the JSON response into out.
// The caller owns error classification; getJSON reports the status code of
// non-2xx responses through the returned statusError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{status: resp.StatusCode, body: truncate(body)}
	}

	return json.Unmarshal(body, out)
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.status, e.body)
}
