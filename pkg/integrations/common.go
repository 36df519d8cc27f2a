package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned for a 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and unexpected statuses.
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient returns an http.Client with the standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// URLEncode is [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
