package gtfsrt

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Providers answer oversized error pages on bad keys; keep only enough of the
// body to make the log line useful.
const errorBodyLimit = 2048

// DefaultTimeout bounds a single feed download when the caller does not pick
// a timeout of its own.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client for fetching GTFS-RT protobuf data. The configured
// headers (typically a provider API key) are applied to every request.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewClient creates a new GTFS-RT HTTP client. headers may be nil for feeds
// that require no authentication; a non-positive timeout falls back to
// DefaultTimeout.
func NewClient(headers map[string]string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		headers:    headers,
	}
}

// Fetch fetches a single GTFS-RT feed from a URL and returns raw protobuf
// bytes. Transport failures and non-2xx responses yield a *FetchError; the
// body of a failed response is kept only as an excerpt for logging.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Body: string(excerpt)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return b, nil
}

// FetchFeed fetches and decodes a feed in one step.
func (c *Client) FetchFeed(ctx context.Context, url string) (*Feed, error) {
	b, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}
