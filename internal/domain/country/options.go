package country

import (
	"time"

	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithGeography enables the external geography fallback.
func WithGeography(g Geography) Option {
	return func(r *Resolver) {
		r.geo = g
	}
}

// WithLookupTimeout bounds a single external geography lookup.
func WithLookupTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.lookupTimeout = d
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}
