package venue

import (
	"time"

	"github.com/okian/podium/pkg/logger"
)

// Default locator configuration constants.
const (
	defaultWorkers        = 5
	defaultCacheTTL       = 24 * time.Hour
	defaultAttemptTimeout = 10 * time.Second
	defaultCity           = "Paris"
	defaultCountry        = "France"
)

// Option applies a configuration option to the Locator.
type Option func(*Locator)

// WithGeocoder sets the external geocoder. Without one only the fallback
// table resolves venues.
func WithGeocoder(g Geocoder) Option {
	return func(l *Locator) {
		l.geocoder = g
	}
}

// WithWorkers bounds the number of lookups in flight.
func WithWorkers(n int) Option {
	return func(l *Locator) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithCacheTTL sets how long external results are reused.
func WithCacheTTL(d time.Duration) Option {
	return func(l *Locator) {
		if d > 0 {
			l.cacheTTL = d
		}
	}
}

// WithAttemptTimeout bounds each query phrasing.
func WithAttemptTimeout(d time.Duration) Option {
	return func(l *Locator) {
		if d > 0 {
			l.attemptTimeout = d
		}
	}
}

// WithRegion sets the city and country appended to query phrasings.
func WithRegion(city, country string) Option {
	return func(l *Locator) {
		if city != "" {
			l.city = city
		}
		l.country = country
	}
}

// WithLogger overrides the component logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Locator) {
		if lg != nil {
			l.log = lg
		}
	}
}
