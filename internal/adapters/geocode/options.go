package geocode

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

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

// WithUserAgent sets the User-Agent header. Nominatim rejects anonymous clients.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRate limits outbound requests per second. Zero or negative disables the limit.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			c.limiter = nil
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
