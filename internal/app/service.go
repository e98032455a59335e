// Package service wires the podium components together and implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/okian/podium/internal/adapters/countrynames"
	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/adapters/geocode"
	"github.com/okian/podium/internal/adapters/imagesearch"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
)

// Service implements the API dependencies for the medal dashboard.
type Service struct {
	// lifecycle serializes Start and Stop; mu guards the fields below and
	// is never held while datasets load.
	lifecycle sync.Mutex
	mu        sync.RWMutex

	cfg    *config.Config
	source repository.Source

	// Core components, built by Start.
	geocoder *geocode.Client
	resolver *country.Resolver
	locator  *venue.Locator
	images   *imagesearch.Client
	store    *repository.SnapshotStore

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the configuration. Defaults come from config.New.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithSource replaces the CSV loader as the dataset source.
func WithSource(src repository.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{cfg: config.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the resolvers and the snapshot store, then loads the
// datasets. A missing dataset fails Start. Snapshot answers ErrNotLoaded
// while the load is running.
func (s *Service) Start(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	cfg := s.cfg
	s.logger.Info(ctx, "starting podium service...", logger.String("data_dir", cfg.DataDir))

	resolverOpts := []country.Option{country.WithLookupTimeout(cfg.GeocoderTimeout())}
	locatorOpts := []venue.Option{
		venue.WithWorkers(cfg.VenueWorkers),
		venue.WithCacheTTL(cfg.VenueCacheTTL()),
		venue.WithAttemptTimeout(cfg.GeocoderTimeout()),
		venue.WithRegion(cfg.GeocoderCity, cfg.GeocoderCountry),
	}
	if cfg.GeocoderEnabled {
		s.geocoder = geocode.New(cfg.GeocoderURL,
			geocode.WithHTTPClient(&http.Client{Timeout: cfg.GeocoderTimeout()}),
			geocode.WithUserAgent(cfg.GeocoderUserAgent),
			geocode.WithRate(cfg.GeocoderRatePerSec),
			geocode.WithBreaker(cfg.BreakerMaxFailures, cfg.BreakerOpen()),
		)
		locatorOpts = append(locatorOpts, venue.WithGeocoder(s.geocoder))
	}
	if geo := s.geography(); geo != nil {
		resolverOpts = append(resolverOpts, country.WithGeography(geo))
	}
	s.resolver = country.NewResolver(resolverOpts...)
	s.locator = venue.NewLocator(locatorOpts...)

	if cfg.ImagesEnabled {
		s.images = imagesearch.New(cfg.ImagesURL,
			imagesearch.WithTimeout(cfg.ImagesTimeout()),
			imagesearch.WithCacheTTL(cfg.ImagesCacheTTL()),
			imagesearch.WithBreaker(cfg.BreakerMaxFailures, cfg.BreakerOpen()),
		)
	}

	src := s.source
	if src == nil {
		src = dataset.NewLoader(cfg.DataDir)
	}
	s.store = repository.NewSnapshotStore(src,
		repository.WithContinentResolver(s.resolver),
		repository.WithVenueAnnotator(s.locator),
		repository.WithReferenceYear(cfg.ReferenceYear),
	)
	store, locator := s.store, s.locator
	s.mu.Unlock()

	if err := store.Load(ctx); err != nil {
		locator.Close()
		s.mu.Lock()
		s.store = nil
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "podium service started",
		logger.Bool("geocoder", s.geocoder != nil),
		logger.Bool("images", s.images != nil),
		logger.Int("venue_workers", cfg.VenueWorkers),
	)
	return nil
}

// geography returns the continent fallback selected by the config, or nil
// when there is none.
func (s *Service) geography() country.Geography {
	switch s.cfg.GeographySource {
	case "offline":
		return countrynames.New()
	case "geocoder":
		if s.geocoder != nil {
			return s.geocoder
		}
	}
	return nil
}

// Stop releases the venue worker pool.
func (s *Service) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.logger.Info(context.Background(), "stopping podium service...")
	s.locator.Close()
	s.started = false
	s.logger.Info(context.Background(), "podium service stopped")
}

// Reload re-reads the datasets. On failure the current snapshot is kept.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	if store == nil {
		return repository.ErrNotLoaded
	}
	return store.Load(ctx)
}

// Snapshot returns the current enriched dataset.
func (s *Service) Snapshot() (*model.Dataset, error) {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	if store == nil {
		return nil, repository.ErrNotLoaded
	}
	return store.Snapshot()
}

// ContinentOf classifies a country identifier.
func (s *Service) ContinentOf(ctx context.Context, identifier string) types.Continent {
	s.mu.RLock()
	r := s.resolver
	s.mu.RUnlock()
	if r == nil {
		c, _ := country.TableContinent(identifier)
		return c
	}
	return r.ContinentOf(ctx, identifier)
}

// ISO3Of maps a NOC code to its ISO-3 code.
func (s *Service) ISO3Of(noc string) string {
	return country.ISO3Of(noc)
}

// PhotoURL returns an athlete or coach photo, or an avatar when image
// search is disabled or finds nothing.
func (s *Service) PhotoURL(ctx context.Context, name, gender, countryName string) string {
	s.mu.RLock()
	images := s.images
	s.mu.RUnlock()
	return images.PhotoURL(ctx, name, gender, countryName)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":           s.started,
		"geocoder_enabled":  s.geocoder != nil,
		"images_enabled":    s.images != nil,
		"geography_source":  s.cfg.GeographySource,
		"max_schedule_rows": s.cfg.MaxScheduleRows,
	}
	if !s.started {
		return stats
	}

	stats["uptime_sec"] = int(time.Since(s.startedAt).Seconds())
	stats["venues_cached"] = s.locator.Cached()
	stats["continents_cached"] = s.resolver.Cached()
	stats["images_cached"] = s.images.Cached()
	if ds, err := s.store.Snapshot(); err == nil {
		stats["loaded_at"] = ds.LoadedAt
		stats["rows"] = ds.Counts()
	}
	return stats
}
