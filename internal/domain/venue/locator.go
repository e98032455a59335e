// Package venue resolves competition venues to coordinates and a display
// category. A static fallback table answers well-known venues; the rest go
// to an external geocoder through a bounded pool and a time-limited cache.
package venue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a free-text query to coordinates. It returns
// ErrNotFound, or any other error, when the query has no usable answer.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Coordinates, error)
}

// Location is the outcome of resolving one venue. Found is false when the
// venue could not be placed; Source tells where the answer came from.
type Location struct {
	Coordinates
	Found  bool   `json:"found"`
	Source string `json:"source"`
}

// Locator resolves venue names. It is safe for concurrent use.
type Locator struct {
	log            logger.Logger
	geocoder       Geocoder
	workers        int
	cacheTTL       time.Duration
	attemptTimeout time.Duration
	city           string
	country        string

	cache    *ttlcache.Cache[string, Location]
	pool     pond.ResultPool[Location]
	inflight singleflight.Group
}

// NewLocator creates a Locator. Call Close to release its worker pool.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{
		log:            logger.Named("venue"),
		workers:        defaultWorkers,
		cacheTTL:       defaultCacheTTL,
		attemptTimeout: defaultAttemptTimeout,
		city:           defaultCity,
		country:        defaultCountry,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.cache = ttlcache.New(
		ttlcache.WithTTL[string, Location](l.cacheTTL),
		ttlcache.WithDisableTouchOnHit[string, Location](),
	)
	l.pool = pond.NewResultPool[Location](l.workers)
	return l
}

// Close stops the worker pool after in-flight lookups finish.
func (l *Locator) Close() {
	l.pool.StopAndWait()
}

// Cached reports how many externally looked-up venues are cached.
func (l *Locator) Cached() int {
	return l.cache.Len()
}

// LocateAll resolves every distinct non-empty name. Fallback matches are
// answered without any external call; cached names reuse the earlier
// answer; the rest are geocoded concurrently. Every requested name is
// present in the result, with Found false when it could not be placed.
func (l *Locator) LocateAll(ctx context.Context, names []string) map[string]Location {
	out := make(map[string]Location, len(names))
	var pending []string

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, seen := out[name]; seen {
			continue
		}
		if at, ok := Fallback(name); ok {
			out[name] = Location{Coordinates: at, Found: true, Source: metrics.SourceFallback}
			metrics.RecordVenueLookup(metrics.SourceFallback)
			continue
		}
		if item := l.cache.Get(name); item != nil {
			loc := item.Value()
			loc.Source = metrics.SourceCache
			out[name] = loc
			metrics.RecordVenueLookup(metrics.SourceCache)
			continue
		}
		// Reserve the key so duplicates in names are skipped above.
		out[name] = Location{Source: metrics.SourceMiss}
		pending = append(pending, name)
	}

	if len(pending) == 0 {
		return out
	}

	start := time.Now()
	group := l.pool.NewGroupContext(ctx)
	for _, name := range pending {
		group.SubmitErr(func() (Location, error) {
			return l.lookup(ctx, name), nil
		})
	}
	results, err := group.Wait()
	if err != nil {
		l.log.Warn(ctx, "venue lookups abandoned", logger.Int("pending", len(pending)), logger.Error(err))
		return out
	}
	for i, loc := range results {
		out[pending[i]] = loc
	}

	l.log.Debug(ctx, "venues geocoded",
		logger.Int("count", len(pending)),
		logger.Duration("elapsed", time.Since(start)))
	return out
}

// lookup resolves one name through the cache, coalescing concurrent callers.
func (l *Locator) lookup(ctx context.Context, name string) Location {
	v, _, _ := l.inflight.Do(name, func() (any, error) {
		if item := l.cache.Get(name); item != nil {
			loc := item.Value()
			loc.Source = metrics.SourceCache
			return loc, nil
		}
		loc, settled := l.geocode(ctx, name)
		if settled {
			l.cache.Set(name, loc, ttlcache.DefaultTTL)
		}
		return loc, nil
	})
	loc := v.(Location)
	metrics.RecordVenueLookup(loc.Source)
	return loc
}

// geocode tries each query phrasing in order and returns the first hit.
// settled reports a definite answer: a hit, or ErrNotFound for every
// phrasing. Rejections, timeouts and provider errors leave it false.
func (l *Locator) geocode(ctx context.Context, name string) (loc Location, settled bool) {
	miss := Location{Source: metrics.SourceMiss}
	if l.geocoder == nil {
		return miss, false
	}

	settled = true
	for _, q := range l.queries(name) {
		actx, cancel := context.WithTimeout(ctx, l.attemptTimeout)
		at, err := l.geocoder.Geocode(actx, q)
		cancel()
		if err == nil {
			return Location{Coordinates: at, Found: true, Source: metrics.SourceExternal}, true
		}
		l.log.Debug(ctx, "geocode attempt failed", logger.String("query", q), logger.Error(err))
		if !errors.Is(err, ErrNotFound) {
			settled = false
		}
		if ctx.Err() != nil {
			return miss, false
		}
	}
	return miss, settled
}

// queries returns the phrasings tried for name, most specific first.
func (l *Locator) queries(name string) []string {
	qs := make([]string, 0, 3)
	if l.country != "" {
		qs = append(qs, fmt.Sprintf("%s, %s, %s", name, l.city, l.country))
	}
	qs = append(qs, fmt.Sprintf("%s, %s", name, l.city), name)
	return qs
}

// Annotate returns a copy of venues with coordinates, category and colours
// attached. Rows that already carry both coordinates keep them; the others
// are located. Rows that cannot be placed keep nil coordinates.
func (l *Locator) Annotate(ctx context.Context, venues []model.Venue) []model.Venue {
	out := make([]model.Venue, len(venues))
	copy(out, venues)

	var names []string
	for _, v := range out {
		if !v.Located() && strings.TrimSpace(v.Name) != "" {
			names = append(names, v.Name)
		}
	}
	found := l.LocateAll(ctx, names)

	for i := range out {
		v := &out[i]
		if !v.Located() {
			v.Latitude, v.Longitude = nil, nil
			if loc, ok := found[v.Name]; ok && loc.Found {
				lat, lon := loc.Latitude, loc.Longitude
				v.Latitude, v.Longitude = &lat, &lon
			}
		}
		v.Type = CategoryOf(v.Name)
		p := PaletteOf(v.Type)
		v.Color, v.ColorRGBA = p.Hex, p.RGBA
	}
	return out
}

// MapPoints keeps only the venues that have coordinates.
func MapPoints(venues []model.Venue) []model.Venue {
	out := make([]model.Venue, 0, len(venues))
	for _, v := range venues {
		if v.Located() {
			out = append(out, v)
		}
	}
	return out
}
