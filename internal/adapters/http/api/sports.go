package api

import (
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/aggregate"
)

// SportsHandler serves the sport, schedule and highlights views.
type SportsHandler struct {
	data            DatasetProvider
	maxScheduleRows int
}

// NewSportsHandler creates a new sports handler.
func NewSportsHandler(data DatasetProvider, maxScheduleRows int) *SportsHandler {
	return &SportsHandler{data: data, maxScheduleRows: maxScheduleRows}
}

// HandleMedals handles GET /api/v1/sports/medals.
func (h *SportsHandler) HandleMedals(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.MedalsBySport(ds, f))
}

// HandleSchedule handles GET /api/v1/schedule.
func (h *SportsHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	f, ok := requestFilter(w, r)
	if !ok {
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.EventSchedule(ds, f, h.maxScheduleRows))
}

type dayQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

// HandleDay handles GET /api/v1/days/{date}.
func (h *SportsHandler) HandleDay(w http.ResponseWriter, r *http.Request) {
	q := dayQuery{Date: r.PathValue("date")}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.WhoWonTheDay(ds, q.Date))
}

type highlightsQuery struct {
	Sport   string `validate:"required"`
	Event   string
	Country string
}

// HandleHighlights handles GET /api/v1/highlights?sport=&event=&country=.
func (h *SportsHandler) HandleHighlights(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := highlightsQuery{
		Sport:   strings.TrimSpace(v.Get("sport")),
		Event:   strings.TrimSpace(v.Get("event")),
		Country: strings.TrimSpace(v.Get("country")),
	}
	if err := validateQuery(q); err != nil {
		badRequest(w, err)
		return
	}
	ds, ok := snapshot(w, h.data)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregate.WatchHighlights(ds, q.Sport, q.Event, q.Country))
}
