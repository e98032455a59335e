// Package repository holds the in-memory dataset snapshot the views read.
//
// A snapshot is built once per load: the raw records are read from the
// Source, derived columns are attached, and the result is published
// atomically. Readers never see a partially enriched dataset.
package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const defaultReferenceYear = 2025

// Source produces raw datasets.
type Source interface {
	Load(ctx context.Context) (*model.Dataset, error)
}

// ContinentResolver classifies a country name or NOC code.
type ContinentResolver interface {
	ContinentOf(ctx context.Context, identifier string) types.Continent
}

// VenueAnnotator fills in venue coordinates and categories.
type VenueAnnotator interface {
	Annotate(ctx context.Context, venues []model.Venue) []model.Venue
}

// SnapshotStore serves the latest enriched dataset.
type SnapshotStore struct {
	log           logger.Logger
	source        Source
	resolver      ContinentResolver
	annotator     VenueAnnotator
	referenceYear int

	// mu serializes loads; reads go through the atomic pointer.
	mu       sync.Mutex
	snapshot atomic.Pointer[model.Dataset]
}

// NewSnapshotStore creates an empty store reading from source.
func NewSnapshotStore(source Source, opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		log:           logger.Named("repository"),
		source:        source,
		referenceYear: defaultReferenceYear,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and enriches a fresh dataset and publishes it. On error the
// previous snapshot, if any, stays in place.
func (s *SnapshotStore) Load(ctx context.Context) error {
	if s.source == nil {
		return ErrNoSource
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	ds, err := s.source.Load(ctx)
	if err != nil {
		return err
	}
	s.enrich(ctx, ds)
	s.snapshot.Store(ds)

	for name, n := range ds.Counts() {
		metrics.UpdateDatasetRows(name, n)
	}
	s.log.Info(ctx, "snapshot published",
		logger.Int("venues_located", len(venue.MapPoints(ds.Venues))),
		logger.Duration("elapsed", time.Since(start)))
	return nil
}

// Snapshot returns the current dataset. Callers must not mutate it.
func (s *SnapshotStore) Snapshot() (*model.Dataset, error) {
	ds := s.snapshot.Load()
	if ds == nil {
		return nil, ErrNotLoaded
	}
	return ds, nil
}

// Set publishes ds as is, without enrichment.
func (s *SnapshotStore) Set(ds *model.Dataset) {
	s.snapshot.Store(ds)
}

func (s *SnapshotStore) enrich(ctx context.Context, ds *model.Dataset) {
	for i := range ds.Athletes {
		ds.Athletes[i].Age = AgeAt(ds.Athletes[i].BirthDate, s.referenceYear)
	}

	if s.resolver != nil {
		continents := map[string]types.Continent{}
		continentOf := func(country string) types.Continent {
			if c, ok := continents[country]; ok {
				return c
			}
			c := s.resolver.ContinentOf(ctx, country)
			continents[country] = c
			return c
		}
		for i := range ds.Medals {
			ds.Medals[i].Continent = continentOf(ds.Medals[i].Country)
		}
		for i := range ds.MedalTotals {
			ds.MedalTotals[i].Continent = continentOf(ds.MedalTotals[i].Country)
		}
		for i := range ds.Athletes {
			ds.Athletes[i].Continent = continentOf(ds.Athletes[i].Country)
		}
	}

	if s.annotator != nil {
		ds.Venues = s.annotator.Annotate(ctx, ds.Venues)
	}
}

// AgeAt returns referenceYear minus the birth year, or nil when the birth
// date is unknown.
func AgeAt(birth time.Time, referenceYear int) *int {
	if birth.IsZero() {
		return nil
	}
	age := referenceYear - birth.Year()
	return &age
}
