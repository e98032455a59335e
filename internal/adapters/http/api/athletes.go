package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/aggregate"
)

const (
	defaultTopAthletes = 10
	defaultTopSports   = 10
)

// AthletesHandler serves the athlete views and profiles.
type AthletesHandler struct {
	data   DatasetProvider
	photos PhotoFinder
}

// NewAthletesHandler creates a new athletes handler. photos may be nil, in
// which case profiles carry no photo URL.
func NewAthletesHandler(data DatasetProvider, photos PhotoFinder) *AthletesHandler {
	return &AthletesHandler{data: data, photos: photos}
}

// HandleSummary handles GET /api/v1/athletes/summary.
func (h *AthletesHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.SummarizeAthletes(ds, f))
}

type agesQuery struct {
	TopSports int `validate:"gte=1,lte=50"`
}

// HandleAges handles GET /api/v1/athletes/ages?top_sports=N.
func (h *AthletesHandler) HandleAges(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	q := agesQuery{TopSports: defaultTopSports}
	if raw := r.URL.Query().Get("top_sports"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, fmt.Errorf("%w: top_sports must be an integer", ErrBadRequest))
			return
		}
		q.TopSports = n
	}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.Ages(ds, f, q.TopSports))
}

// HandleGender handles GET /api/v1/athletes/gender?continent=&detail_country=.
func (h *AthletesHandler) HandleGender(w http.ResponseWriter, r *http.Request) {
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
	country := strings.TrimSpace(r.URL.Query().Get("detail_country"))
	writeJSON(w, http.StatusOK, aggregate.Genders(ds, f, continent, country))
}

// HandleTop handles GET /api/v1/athletes/top?limit=N.
func (h *AthletesHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	n, err := limitParam(r.URL.Query(), defaultTopAthletes)
	if err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.TopAthletes(ds, f, n))
}

type profileQuery struct {
	Name string `validate:"required,max=200"`
}

// HandleProfile handles GET /api/v1/athletes/profile?name=.
func (h *AthletesHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	q := profileQuery{Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	p, found := aggregate.AthleteProfile(ds, q.Name)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", fmt.Errorf("%w: athlete %q", ErrNotFound, q.Name))
		return
	}
	if h.photos != nil {
		p.PhotoURL = h.photos.PhotoURL(r.Context(), p.Name, p.Gender, p.Country)
		if p.Coach != nil {
			p.Coach.PhotoURL = h.photos.PhotoURL(r.Context(), p.Coach.Name, p.Coach.Gender, p.Coach.Country)
		}
	}
	writeJSON(w, http.StatusOK, p)
}
