// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	DatasetProvider
	Resolver
	PhotoFinder
}

// DatasetProvider exposes the current enriched dataset snapshot.
type DatasetProvider interface {
	Snapshot() (*model.Dataset, error)
}

// Resolver answers the ad-hoc country lookups.
type Resolver interface {
	ContinentOf(ctx context.Context, identifier string) types.Continent
	ISO3Of(noc string) string
}

// PhotoFinder returns a display photo URL for an athlete or coach. It never
// fails; a generated avatar stands in for a missing photo.
type PhotoFinder interface {
	PhotoURL(ctx context.Context, name, gender, country string) string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	medalsHandler   *MedalsHandler
	athletesHandler *AthletesHandler
	sportsHandler   *SportsHandler
	venuesHandler   *VenuesHandler
	log             logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := options{maxScheduleRows: defaultMaxScheduleRows, log: logger.Named("api")}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{
		healthHandler:   NewHealthHandler(deps),
		statsHandler:    NewStatsHandler(statsProvider),
		medalsHandler:   NewMedalsHandler(deps),
		athletesHandler: NewAthletesHandler(deps, deps),
		sportsHandler:   NewSportsHandler(deps, o.maxScheduleRows),
		venuesHandler:   NewVenuesHandler(deps, deps),
		log:             o.log,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestID(MetricsMiddleware(h, endpoint)))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /metrics", "metrics", s.healthHandler.HandleMetrics)
	route("GET /stats", "stats", s.statsHandler.HandleStats)

	route("GET /api/v1/overview", "overview", s.medalsHandler.HandleOverview)
	route("GET /api/v1/distribution", "distribution", s.medalsHandler.HandleDistribution)
	route("GET /api/v1/standings", "standings", s.medalsHandler.HandleStandings)
	route("GET /api/v1/countries/top", "countries_top", s.medalsHandler.HandleTopCountries)
	route("GET /api/v1/continents", "continents", s.medalsHandler.HandleContinents)
	route("GET /api/v1/hierarchy", "hierarchy", s.medalsHandler.HandleHierarchy)
	route("GET /api/v1/choropleth", "choropleth", s.medalsHandler.HandleChoropleth)
	route("GET /api/v1/summary", "summary", s.medalsHandler.HandleSummary)
	route("GET /api/v1/compare", "compare", s.medalsHandler.HandleCompare)

	route("GET /api/v1/athletes/summary", "athletes_summary", s.athletesHandler.HandleSummary)
	route("GET /api/v1/athletes/ages", "athletes_ages", s.athletesHandler.HandleAges)
	route("GET /api/v1/athletes/gender", "athletes_gender", s.athletesHandler.HandleGender)
	route("GET /api/v1/athletes/top", "athletes_top", s.athletesHandler.HandleTop)
	route("GET /api/v1/athletes/profile", "athletes_profile", s.athletesHandler.HandleProfile)

	route("GET /api/v1/sports/medals", "sports_medals", s.sportsHandler.HandleMedals)
	route("GET /api/v1/schedule", "schedule", s.sportsHandler.HandleSchedule)
	route("GET /api/v1/days/{date}", "days", s.sportsHandler.HandleDay)
	route("GET /api/v1/highlights", "highlights", s.sportsHandler.HandleHighlights)

	route("GET /api/v1/venues", "venues", s.venuesHandler.HandleVenues)
	route("GET /api/v1/facets", "facets", s.venuesHandler.HandleFacets)
	route("GET /api/v1/resolve/continent", "resolve_continent", s.venuesHandler.HandleResolveContinent)
	route("GET /api/v1/resolve/iso3", "resolve_iso3", s.venuesHandler.HandleResolveISO3)

	s.log.Debug(context.Background(), "routes registered")
}
