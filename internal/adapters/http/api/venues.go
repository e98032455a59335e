package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/aggregate"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/venue"
)

// VenuesHandler serves the venue map, the filter facets and the ad-hoc
// country lookups.
type VenuesHandler struct {
	data     DatasetProvider
	resolver Resolver
}

// NewVenuesHandler creates a new venues handler.
func NewVenuesHandler(data DatasetProvider, resolver Resolver) *VenuesHandler {
	return &VenuesHandler{data: data, resolver: resolver}
}

type mapCenter struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type venuesResponse struct {
	Venues   []model.Venue                     `json:"venues"`
	Unplaced int                               `json:"unplaced"`
	Center   mapCenter                         `json:"center"`
	Legend   map[types.VenueType]venue.Palette `json:"legend"`
}

// HandleVenues handles GET /api/v1/venues?type=&located=true.
func (h *VenuesHandler) HandleVenues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	located, _ := strconv.ParseBool(q.Get("located"))
	kinds := listParam(q, "type")

	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	resp := venuesResponse{
		Venues: make([]model.Venue, 0, len(ds.Venues)),
		Center: mapCenter{Latitude: venue.CenterLatitude, Longitude: venue.CenterLongitude},
		Legend: venue.Palettes(),
	}
	for _, v := range ds.Venues {
		if len(kinds) > 0 && !matchesType(v.Type, kinds) {
			continue
		}
		if !v.Located() {
			resp.Unplaced++
			if located {
				continue
			}
		}
		resp.Venues = append(resp.Venues, v)
	}
	writeJSON(w, http.StatusOK, resp)
}

func matchesType(t types.VenueType, kinds []string) bool {
	for _, k := range kinds {
		if strings.EqualFold(string(t), k) {
			return true
		}
	}
	return false
}

// HandleFacets handles GET /api/v1/facets.
func (h *VenuesHandler) HandleFacets(w http.ResponseWriter, _ *http.Request) {
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.FacetsOf(ds))
}

type continentQuery struct {
	Q string `validate:"required,max=100"`
}

type continentResponse struct {
	Query     string          `json:"query"`
	Continent types.Continent `json:"continent"`
}

// HandleResolveContinent handles GET /api/v1/resolve/continent?q=.
func (h *VenuesHandler) HandleResolveContinent(w http.ResponseWriter, r *http.Request) {
	q := continentQuery{Q: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, continentResponse{Query: q.Q, Continent: h.resolver.ContinentOf(r.Context(), q.Q)})
}

type iso3Query struct {
	NOC string `validate:"required,len=3,alpha"`
}

type iso3Response struct {
	NOC  string `json:"noc"`
	ISO3 string `json:"iso3"`
}

// HandleResolveISO3 handles GET /api/v1/resolve/iso3?noc=.
func (h *VenuesHandler) HandleResolveISO3(w http.ResponseWriter, r *http.Request) {
	q := iso3Query{NOC: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("noc")))}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, iso3Response{NOC: q.NOC, ISO3: h.resolver.ISO3Of(q.NOC)})
}
