package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/linkprotect/linkprotect/internal/config"
)

// Fetch errors.
var (
	// ErrEmptyURL is returned when an empty URL is submitted for fetching.
	ErrEmptyURL = errors.New("empty url")

	// ErrUnsupportedScheme is returned for URLs that are not http or https.
	// The fetch client never dials anything else (file:, ftp:, data: ...).
	ErrUnsupportedScheme = errors.New("unsupported url scheme")

	// ErrBadStatus is returned when the remote server answers with a
	// non-2xx status code.
	ErrBadStatus = errors.New("unexpected response status")
)

// maxRedirects limits redirect chains when fetching scanned links.
// Shorteners legitimately redirect once or twice; longer chains are
// either broken or deliberately evasive.
const maxRedirects = 5

// Client fetches the content of scanned links.
// It is safe for concurrent use by multiple scans and is intended to be
// created once at startup and shared for the process lifetime.
type Client struct {
	// timeout is the mandatory per-call timeout applied to every fetch.
	timeout time.Duration

	// maxBodySize limits how many bytes of the response body are read.
	maxBodySize int64

	// userAgent is sent with every request.
	userAgent string

	// once guards lazy construction of httpClient so that concurrent
	// first fetches build it exactly once.
	once       sync.Once
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new fetch client.
// Construction performs no network operations; the underlying http.Client
// is built on first use.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout:     config.DefaultFetchTimeout,
		maxBodySize: config.DefaultMaxBodySize,
		userAgent:   "LinkProtect/1.0 (+link safety scanner)",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// client returns the lazily-built http.Client.
func (c *Client) client() *http.Client {
	c.once.Do(func() {
		c.httpClient = &http.Client{
			// Timeout covers connection, redirects and body read as a
			// hard upper bound; the per-call context usually fires first.
			Timeout: c.timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		}
	})
	return c.httpClient
}

// Fetch retrieves the body of the given URL as text.
// The call is bounded by the client's timeout regardless of the caller's
// context, and the returned body is truncated at the configured size cap.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrEmptyURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")

	resp, err := c.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
