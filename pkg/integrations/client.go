package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/younextz/screenshot-styler/pkg/buildinfo"
	"github.com/younextz/screenshot-styler/pkg/cache"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/observability"
)

// maxBodySize bounds every response body read into memory.
const maxBodySize = 16 << 20

// Client is the shared HTTP client for remote sources: response caching,
// retry with backoff, and default headers.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	keyer     cache.Keyer
	namespace string
	ttl       time.Duration
	headers   map[string]string
}

// NewClient returns a client whose cache keys live under namespace.
// A nil cache disables caching.
func NewClient(c cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:      NewHTTPClient(),
		cache:     c,
		keyer:     cache.NewDefaultKeyer(),
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
	}
}

// WithKeyer replaces the key layout, typically with a [cache.ScopedKeyer].
func (c *Client) WithKeyer(k cache.Keyer) *Client {
	if k != nil {
		c.keyer = k
	}
	return c
}

// SetHTTPClient swaps the underlying transport.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// Cached returns the cached value for key in v, or runs fetch (with retry)
// and caches what it stored in v. refresh skips the lookup.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	k := c.keyer.HTTPKey(c.namespace, key)
	if !refresh {
		if ok, _ := cache.GetJSON(ctx, c.cache, k, v); ok {
			observability.Cache().OnCacheHit(ctx, "http")
			return nil
		}
		observability.Cache().OnCacheMiss(ctx, "http")
	}
	if err := cache.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if err := cache.SetJSON(ctx, c.cache, k, v, c.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "http", 0)
	}
	return nil
}

// Get performs a GET and JSON-decodes the body into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders is Get with extra headers; they override the defaults.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	resp, err := c.do(ctx, url, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(v)
}

// GetText returns the body as a string.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	data, _, err := c.GetBytes(ctx, url)
	return string(data), err
}

// GetBytes returns the body and its Content-Type header.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := c.do(ctx, url, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, "", cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "screenshot-styler/"+buildinfo.Version)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		retry, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, &styerr.RateLimitedError{RetryAfter: retry}
	}
	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
