package gtfsrt

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Client is a simple HTTP client for fetching GTFS-RT protobuf data from a
// fixed feed URL with a pre-supplied credential header.
type Client struct {
	httpClient *http.Client
	url        string
	headers    map[string]string
}

// NewClient creates a new GTFS-RT HTTP client for the given feed URL.
// The header map is sent verbatim on every request.
func NewClient(url string, headers map[string]string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		headers:    headers,
	}
}

// URL returns the feed URL the client polls.
func (c *Client) URL() string { return c.url }

// Fetch fetches the feed once and returns raw protobuf bytes.
// Any transport failure or non-2xx status is returned as a *TransportError.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &TransportError{URL: c.url, Err: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: c.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: c.url, Err: err}
	}
	return body, nil
}
