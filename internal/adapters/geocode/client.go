// Package geocode is a Nominatim search client. It resolves venue queries to
// coordinates and country names to ISO 3166-1 alpha-2 codes.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/okian/podium/internal/adapters/resilience"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const (
	providerName     = "geocoder"
	defaultUserAgent = "podium/1.0"
	maxBodyBytes     = 1 << 20
)

// place is the subset of a Nominatim jsonv2 result we read.
type place struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Client talks to a Nominatim-compatible /search endpoint.
type Client struct {
	log       logger.Logger
	http      *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter

	breakerFailures uint32
	breakerOpen     time.Duration
	breaker         *gobreaker.CircuitBreaker[[]place]
}

// New creates a Client for baseURL, e.g. "https://nominatim.openstreetmap.org".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		log:             logger.Named("geocode"),
		http:            &http.Client{},
		baseURL:         strings.TrimRight(baseURL, "/"),
		userAgent:       defaultUserAgent,
		breakerFailures: resilience.DefaultMaxFailures,
		breakerOpen:     resilience.DefaultOpenFor,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = resilience.NewBreaker[[]place](resilience.BreakerConfig{
		Name:        providerName,
		MaxFailures: c.breakerFailures,
		OpenFor:     c.breakerOpen,
		Logger:      c.log,
	})
	return c
}

// Geocode returns the coordinates of the best match for query.
func (c *Client) Geocode(ctx context.Context, query string) (venue.Coordinates, error) {
	places, err := c.search(ctx, url.Values{"q": {query}})
	if err != nil {
		return venue.Coordinates{}, err
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return venue.Coordinates{}, fmt.Errorf("%w: lat %q", ErrDecode, places[0].Lat)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return venue.Coordinates{}, fmt.Errorf("%w: lon %q", ErrDecode, places[0].Lon)
	}
	return venue.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// CountryCode returns the upper-case alpha-2 code of the country named name.
func (c *Client) CountryCode(ctx context.Context, name string) (string, error) {
	places, err := c.search(ctx, url.Values{
		"q":              {name},
		"featureType":    {"country"},
		"addressdetails": {"1"},
	})
	if err != nil {
		return "", err
	}
	code := strings.ToUpper(places[0].Address.CountryCode)
	if code == "" {
		return "", ErrNoCountry
	}
	return code, nil
}

// search runs one /search request through the limiter and breaker. An
// empty result is venue.ErrNotFound and does not count against the breaker.
func (c *Client) search(ctx context.Context, params url.Values) ([]place, error) {
	if strings.TrimSpace(params.Get("q")) == "" {
		return nil, ErrEmptyQuery
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
	}

	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	start := time.Now()
	places, err := c.breaker.Execute(func() ([]place, error) {
		return c.do(ctx, params)
	})
	outcome := "ok"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "rejected"
	case err != nil:
		outcome = "error"
	case len(places) == 0:
		outcome = "empty"
	}
	metrics.RecordProviderRequest(providerName, outcome, time.Since(start))

	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, venue.ErrNotFound
	}
	return places, nil
}

func (c *Client) do(ctx context.Context, params url.Values) ([]place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return places, nil
}
