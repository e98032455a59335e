// Package imagesearch looks up a portrait for an athlete or coach by
// scraping an image search results page. Lookups are best effort: every
// failure resolves to a generated avatar.
package imagesearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/okian/podium/internal/adapters/resilience"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const (
	providerName    = "images"
	defaultTimeout  = 5 * time.Second
	defaultCacheTTL = time.Hour
	maxBodyBytes    = 4 << 20
	browserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Tried in order; the first acceptable match wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\["(https?://[^"]+\.(?:jpg|jpeg|png|webp))"`),
	regexp.MustCompile(`(?i)"ou":"(https?://[^"]+)"`),
	regexp.MustCompile(`(?i)data-src="(https?://[^"]+)"`),
}

var rejected = []string{"gstatic", "google", "favicon"}

// Client queries an image search page. A nil *Client is valid and always
// answers with an avatar.
type Client struct {
	log       logger.Logger
	http      *http.Client
	searchURL string
	timeout   time.Duration
	cacheTTL  time.Duration

	// "" marks a cached miss.
	cache    *ttlcache.Cache[string, string]
	inflight singleflight.Group

	breakerFailures uint32
	breakerOpen     time.Duration
	breaker         *gobreaker.CircuitBreaker[string]
}

// New creates a Client for searchURL, e.g. "https://www.google.com/search".
func New(searchURL string, opts ...Option) *Client {
	c := &Client{
		log:             logger.Named("imagesearch"),
		http:            &http.Client{},
		searchURL:       searchURL,
		timeout:         defaultTimeout,
		cacheTTL:        defaultCacheTTL,
		breakerFailures: resilience.DefaultMaxFailures,
		breakerOpen:     resilience.DefaultOpenFor,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = ttlcache.New(
		ttlcache.WithTTL[string, string](c.cacheTTL),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	c.breaker = resilience.NewBreaker[string](resilience.BreakerConfig{
		Name:        providerName,
		MaxFailures: c.breakerFailures,
		OpenFor:     c.breakerOpen,
		// A page without a usable image is an answer, not an outage.
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, ErrNoImage) },
		Logger:       c.log,
	})
	return c
}

// PhotoURL returns a portrait URL for the person, falling back to Avatar.
func (c *Client) PhotoURL(ctx context.Context, name, gender, country string) string {
	if u, ok := c.Lookup(ctx, name, country); ok {
		return u
	}
	metrics.RecordImageLookup(metrics.SourceAvatar)
	return Avatar(name, gender)
}

// Lookup searches for "{name} {country} olympic athlete" and reports the
// first acceptable image URL. Hits and misses are both cached.
func (c *Client) Lookup(ctx context.Context, name, country string) (string, bool) {
	if c == nil || strings.TrimSpace(name) == "" {
		return "", false
	}
	query := name + " " + country + " olympic athlete"

	if item := c.cache.Get(query); item != nil {
		metrics.RecordImageLookup(metrics.SourceCache)
		return item.Value(), item.Value() != ""
	}

	v, _, _ := c.inflight.Do(query, func() (any, error) {
		if item := c.cache.Get(query); item != nil {
			return item.Value(), nil
		}
		found, err := c.search(ctx, query)
		if err != nil {
			c.log.Debug(ctx, "image lookup failed",
				logger.String("query", query),
				logger.Error(err))
			if ctx.Err() != nil {
				return "", nil
			}
		}
		c.cache.Set(query, found, ttlcache.DefaultTTL)
		return found, nil
	})
	found, _ := v.(string)
	if found == "" {
		metrics.RecordImageLookup(metrics.SourceMiss)
		return "", false
	}
	metrics.RecordImageLookup(metrics.SourceExternal)
	return found, true
}

// Cached returns the number of memoized queries.
func (c *Client) Cached() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	found, err := c.breaker.Execute(func() (string, error) {
		body, err := c.fetch(ctx, query)
		if err != nil {
			return "", err
		}
		return extract(body)
	})
	outcome := "ok"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "rejected"
	case errors.Is(err, ErrNoImage):
		outcome = "empty"
	case err != nil:
		outcome = "error"
	}
	metrics.RecordProviderRequest(providerName, outcome, time.Since(start))
	return found, err
}

func (c *Client) fetch(ctx context.Context, query string) (string, error) {
	params := url.Values{"q": {query}, "tbm": {"isch"}, "safe": {"active"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("User-Agent", browserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	return string(body), nil
}

func extract(body string) (string, error) {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			if acceptable(m[1]) {
				return m[1], nil
			}
		}
	}
	return "", ErrNoImage
}

func acceptable(u string) bool {
	for _, r := range rejected {
		if strings.Contains(u, r) {
			return false
		}
	}
	return true
}
