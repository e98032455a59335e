package imagesearch

import (
	"net/http"
	"time"

	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds a single search request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCacheTTL sets how long a lookup result, hit or miss, is reused.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.cacheTTL = d
		}
	}
}

// WithBreaker configures the circuit breaker around requests.
func WithBreaker(maxFailures int, openFor time.Duration) Option {
	return func(c *Client) {
		if maxFailures > 0 {
			c.breakerFailures = uint32(maxFailures) //nolint:gosec // bounded by config validation
		}
		if openFor > 0 {
			c.breakerOpen = openFor
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
