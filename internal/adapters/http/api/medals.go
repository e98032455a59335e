package api

import (
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/aggregate"
)

// Default list sizes of the medal views.
const (
	defaultStandings    = 10
	defaultTopCountries = 20
)

// MedalsHandler serves the medal table views.
type MedalsHandler struct {
	data DatasetProvider
}

// NewMedalsHandler creates a new medals handler.
func NewMedalsHandler(data DatasetProvider) *MedalsHandler {
	return &MedalsHandler{data: data}
}

// HandleOverview handles GET /api/v1/overview.
func (h *MedalsHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.OverviewKPIs(ds, f))
}

// HandleDistribution handles GET /api/v1/distribution.
func (h *MedalsHandler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.Distribution(ds, f))
}

// HandleStandings handles GET /api/v1/standings?limit=N.
func (h *MedalsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	n, err := limitParam(r.URL.Query(), defaultStandings)
	if err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.TopStandings(ds, f, n))
}

// HandleTopCountries handles GET /api/v1/countries/top?limit=N.
func (h *MedalsHandler) HandleTopCountries(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	n, err := limitParam(r.URL.Query(), defaultTopCountries)
	if err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.TopCountries(ds, f, n))
}

// HandleContinents handles GET /api/v1/continents.
func (h *MedalsHandler) HandleContinents(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.ByContinent(ds, f))
}

// HandleHierarchy handles GET /api/v1/hierarchy.
func (h *MedalsHandler) HandleHierarchy(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.MedalHierarchy(ds, f))
}

// HandleChoropleth handles GET /api/v1/choropleth?continent=.
func (h *MedalsHandler) HandleChoropleth(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	continent, err := continentParam(r.URL.Query(), "continent")
	if err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.WorldMap(ds, f, continent))
}

// HandleSummary handles GET /api/v1/summary.
func (h *MedalsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.SummaryStats(ds, f))
}

type compareQuery struct {
	A string `validate:"required"`
	B string `validate:"required"`
}

// HandleCompare handles GET /api/v1/compare?a=&b=.
func (h *MedalsHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	q := compareQuery{
		A: strings.TrimSpace(r.URL.Query().Get("a")),
		B: strings.TrimSpace(r.URL.Query().Get("b")),
	}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.Compare(ds, q.A, q.B))
}
