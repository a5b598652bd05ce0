package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
)

const defaultTimeout = 30 * time.Second

// Client fetches remote image resources over HTTP with a bounded timeout,
// so that a hanging origin stalls only a single image, not the whole run.
type Client struct {
	httpClient *http.Client
}

var _ interfaces.ImageFetcher = &Client{}

type Option func(*Client)

// WithTimeout overrides the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves url and returns the response body. Non-2xx responses and
// empty bodies are errors; the caller treats any error as a per-image
// resolution failure.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build image request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch image", goerr.V("url", url))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("unexpected status fetching image",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read image body", goerr.V("url", url))
	}
	if len(data) == 0 {
		return nil, goerr.New("empty image data received", goerr.V("url", url))
	}

	return data, nil
}
