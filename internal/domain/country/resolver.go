// Package country classifies countries and Olympic committee codes by
// continent and translates committee codes to ISO 3166-1 alpha-3.
package country

import (
	"context"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const defaultLookupTimeout = 10 * time.Second

// Geography resolves a free-form country name to an ISO 3166-1 alpha-2 code.
// It is the optional external fallback consulted after the static table.
type Geography interface {
	CountryCode(ctx context.Context, name string) (string, error)
}

// Resolver answers continent and ISO-3 lookups. Continent results are
// memoized per distinct input for the lifetime of the Resolver, except
// external lookups that timed out.
type Resolver struct {
	log           logger.Logger
	geo           Geography
	lookupTimeout time.Duration
	memo          *ttlcache.Cache[string, types.Continent]
	inflight      singleflight.Group
}

// NewResolver creates a Resolver. Without WithGeography only the static
// table is consulted.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		log:           logger.Named("country"),
		lookupTimeout: defaultLookupTimeout,
		memo: ttlcache.New(
			ttlcache.WithTTL[string, types.Continent](ttlcache.NoTTL),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ContinentOf classifies a country name, name variant or NOC code. The
// identifier is trimmed and matched exactly against the static table, then
// handed to the external geography service if one is configured. Anything
// unresolved, including empty input, is types.Unknown. Never fails.
func (r *Resolver) ContinentOf(ctx context.Context, identifier string) types.Continent {
	key := strings.TrimSpace(identifier)
	if key == "" {
		metrics.RecordContinentLookup(metrics.SourceUnknown)
		return types.Unknown
	}

	if item := r.memo.Get(key); item != nil {
		metrics.RecordContinentLookup(metrics.SourceCache)
		return item.Value()
	}

	// The shared lookup outlives any single caller so that one cancelled
	// request cannot decide the answer for everyone coalesced onto it.
	ch := r.inflight.DoChan(key, func() (any, error) {
		c, settled := r.resolve(context.WithoutCancel(ctx), key)
		if settled {
			r.memo.Set(key, c, ttlcache.DefaultTTL)
		}
		return c, nil
	})
	select {
	case res := <-ch:
		return res.Val.(types.Continent)
	case <-ctx.Done():
		metrics.RecordContinentLookup(metrics.SourceUnknown)
		return types.Unknown
	}
}

// resolve classifies key. settled is false when the external lookup ran out
// of time, in which case the answer must not be memoized.
func (r *Resolver) resolve(ctx context.Context, key string) (c types.Continent, settled bool) {
	if c, ok := continentTable[key]; ok {
		metrics.RecordContinentLookup(metrics.SourceTable)
		return c, true
	}

	settled = true
	if r.geo != nil {
		lctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
		defer cancel()
		code, err := r.geo.CountryCode(lctx, key)
		if err != nil {
			r.log.Debug(ctx, "geography lookup failed", logger.String("identifier", key), logger.Error(err))
			settled = lctx.Err() == nil
		} else if c := ContinentOfAlpha2(code); c != types.Unknown {
			metrics.RecordContinentLookup(metrics.SourceExternal)
			return c, true
		}
	}

	metrics.RecordContinentLookup(metrics.SourceUnknown)
	return types.Unknown, settled
}

// Cached reports how many distinct identifiers have been memoized.
func (r *Resolver) Cached() int {
	return r.memo.Len()
}

// ISO3Of translates a NOC code to ISO 3166-1 alpha-3. Codes without an
// entry are returned unchanged.
func (r *Resolver) ISO3Of(noc string) string {
	return ISO3Of(noc)
}

// ISO3Of translates a NOC code to ISO 3166-1 alpha-3. Codes without an
// entry are returned unchanged.
func ISO3Of(noc string) string {
	if iso, ok := nocToISO3[noc]; ok {
		return iso
	}
	return noc
}

// TableContinent looks identifier up in the static table only.
func TableContinent(identifier string) (types.Continent, bool) {
	c, ok := continentTable[strings.TrimSpace(identifier)]
	return c, ok
}

// ContinentOfAlpha2 maps an ISO 3166-1 alpha-2 code to its continent.
func ContinentOfAlpha2(code string) types.Continent {
	if c, ok := alpha2Continent[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return types.Unknown
}
