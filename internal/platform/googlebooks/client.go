// Package googlebooks is a thin client for the Google Books volumes API.
// It returns raw payloads; decoding belongs to the caller.
package googlebooks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookduck/internal/apperr"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAPIKey appends key= to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func NewClient(userAgent string, rps int, opts ...Option) *Client {
	if rps <= 0 {
		rps = 1
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchList runs a keyword search. page is 1-based.
func (c *Client) SearchList(ctx context.Context, keyword string, page, size int) ([]byte, error) {
	q := url.Values{}
	q.Set("q", keyword)
	q.Set("startIndex", strconv.Itoa((page-1)*size))
	q.Set("maxResults", strconv.Itoa(size))
	return c.get(ctx, "/volumes", q)
}

// SearchDetail fetches one volume by its provider id.
func (c *Client) SearchDetail(ctx context.Context, providerID string) ([]byte, error) {
	return c.get(ctx, "/volumes/"+url.PathEscape(providerID), url.Values{})
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.ErrProvider.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.ErrProvider.WithCause(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.ErrProvider.WithCause(err)
	}
	return body, nil
}
