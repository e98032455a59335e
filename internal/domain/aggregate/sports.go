package aggregate

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// EventMedals is the number of medals awarded in one event.
type EventMedals struct {
	Discipline string `json:"discipline"`
	Event      string `json:"event"`
	Count      int    `json:"count"`
}

// SportMedals feeds the discipline and event treemap.
type SportMedals struct {
	Events []EventMedals `json:"events"`
	Total  int           `json:"total"`
	NoData bool          `json:"no_data"`
}

// MedalsBySport counts medal records per discipline and event. Unlike the
// athlete views, sports here match the discipline exactly.
func MedalsBySport(ds *model.Dataset, f Filter) SportMedals {
	medals := f.MedalTypes()
	counts := map[[2]string]int{}
	total := 0
	for _, m := range ds.Medals {
		if !containsMedal(medals, m.MedalType) || !in(m.Country, f.Countries) || !in(m.Discipline, f.Sports) {
			continue
		}
		counts[[2]string{m.Discipline, m.Event}]++
		total++
	}

	out := SportMedals{Events: make([]EventMedals, 0, len(counts)), Total: total, NoData: total == 0}
	for k, n := range counts {
		out.Events = append(out.Events, EventMedals{Discipline: k[0], Event: k[1], Count: n})
	}
	sort.Slice(out.Events, func(i, j int) bool {
		if out.Events[i].Discipline != out.Events[j].Discipline {
			return out.Events[i].Discipline < out.Events[j].Discipline
		}
		return out.Events[i].Event < out.Events[j].Event
	})
	return out
}

// ScheduleDay is the ordered sessions of one calendar day.
type ScheduleDay struct {
	Day     string                `json:"day"`
	Entries []model.ScheduleEntry `json:"entries"`
}

// Schedule is the filtered timeline grouped by day. TooLarge is set, and
// no rows are returned, when an unfiltered schedule exceeds the row limit.
type Schedule struct {
	Total    int           `json:"total"`
	Days     []ScheduleDay `json:"days"`
	TooLarge bool          `json:"too_large"`
	NoData   bool          `json:"no_data"`
}

// EventSchedule filters sessions by exact discipline and venue and groups
// them by start day, each day ordered by start time.
func EventSchedule(ds *model.Dataset, f Filter, maxRows int) Schedule {
	var rows []model.ScheduleEntry
	for _, s := range ds.Schedule {
		if in(s.Discipline, f.Sports) && in(s.Venue, f.Venues) {
			rows = append(rows, s)
		}
	}

	out := Schedule{Total: len(rows)}
	unfiltered := len(f.Sports) == 0 && len(f.Venues) == 0
	switch {
	case maxRows > 0 && len(rows) > maxRows && unfiltered:
		out.TooLarge = true
		return out
	case len(rows) == 0:
		out.NoData = true
		return out
	}

	sortByStart(rows)
	index := map[string]int{}
	for _, s := range rows {
		day := s.Day()
		i, ok := index[day]
		if !ok {
			i = len(out.Days)
			index[day] = i
			out.Days = append(out.Days, ScheduleDay{Day: day})
		}
		out.Days[i].Entries = append(out.Days[i].Entries, s)
	}
	sort.SliceStable(out.Days, func(i, j int) bool { return out.Days[i].Day < out.Days[j].Day })
	return out
}

func sortByStart(rows []model.ScheduleEntry) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Start.Before(rows[j].Start) })
}

// DayResults holds the medals and sessions of one day of the Games.
type DayResults struct {
	Day       string                `json:"day"`
	FirstDay  string                `json:"first_day"`
	LastDay   string                `json:"last_day"`
	Medals    []CountryMedalCount   `json:"medals"`
	Events    []model.ScheduleEntry `json:"events"`
	NoMedals  bool                  `json:"no_medals"`
	NoEvents  bool                  `json:"no_events"`
	MedalDays []string              `json:"medal_days"`
}

// WhoWonTheDay groups the medals awarded on day (YYYY-MM-DD) by country and
// medal type, and lists the sessions that started that day.
func WhoWonTheDay(ds *model.Dataset, day string) DayResults {
	out := DayResults{Day: day, MedalDays: MedalDays(ds)}
	if len(out.MedalDays) > 0 {
		out.FirstDay = out.MedalDays[0]
		out.LastDay = out.MedalDays[len(out.MedalDays)-1]
	}

	counts := map[[2]string]int{}
	for _, m := range ds.Medals {
		if !m.Date.IsZero() && m.Date.Format(time.DateOnly) == day {
			counts[[2]string{m.Country, string(m.MedalType)}]++
		}
	}
	out.Medals = make([]CountryMedalCount, 0, len(counts))
	for k, n := range counts {
		out.Medals = append(out.Medals, CountryMedalCount{Country: k[0], Medal: types.MedalType(k[1]), Count: n})
	}
	sortCountryMedalCounts(out.Medals)

	for _, s := range ds.Schedule {
		if s.Day() == day {
			out.Events = append(out.Events, s)
		}
	}
	sortByStart(out.Events)

	out.NoMedals = len(out.Medals) == 0
	out.NoEvents = len(out.Events) == 0
	return out
}

// MedalDays lists the distinct days on which medals were awarded, in order.
func MedalDays(ds *model.Dataset) []string {
	seen := map[string]struct{}{}
	for _, m := range ds.Medals {
		if !m.Date.IsZero() {
			seen[m.Date.Format(time.DateOnly)] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

const (
	highlightsBase   = "https://www.youtube.com/results?search_query="
	highlightsPrefix = "Paris 2024 Olympics"
)

// HighlightsQuery returns the search phrase for a sport and optional event
// and country.
func HighlightsQuery(sport, event, country string) string {
	parts := []string{highlightsPrefix, sport}
	if event != "" {
		parts = append(parts, event)
	}
	if country != "" {
		parts = append(parts, country)
	}
	parts = append(parts, "highlights")
	return strings.Join(parts, " ")
}

// HighlightsURL returns a video search URL for the highlights of a sport.
// The query is percent-encoded with spaces as %20 and slashes kept.
func HighlightsURL(sport, event, country string) string {
	q := url.QueryEscape(HighlightsQuery(sport, event, country))
	q = strings.ReplaceAll(q, "+", "%20")
	return highlightsBase + strings.ReplaceAll(q, "%2F", "/")
}

// Link is a labelled URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Highlights is the search link for one selection plus the choices that
// narrow it.
type Highlights struct {
	Sport      string   `json:"sport"`
	Query      string   `json:"query"`
	URL        string   `json:"url"`
	Events     []string `json:"events"`
	Countries  []string `json:"countries"`
	QuickLinks []Link   `json:"quick_links"`
}

var quickLinks = []struct{ label, sport, event string }{
	{"Football Final", "Football", "Final"},
	{"Basketball Final", "Basketball", "Final"},
	{"Swimming 100m", "Swimming", "100m Freestyle"},
	{"Athletics 100m", "Athletics", "100m"},
	{"Gymnastics", "Artistic Gymnastics", ""},
	{"Tennis Final", "Tennis", "Final"},
}

// QuickLinks returns the fixed list of popular highlight searches.
func QuickLinks() []Link {
	out := make([]Link, 0, len(quickLinks))
	for _, q := range quickLinks {
		out = append(out, Link{Label: q.label, URL: HighlightsURL(q.sport, q.event, "")})
	}
	return out
}

// WatchHighlights builds the highlights link. Events come from the
// schedule of sport and countries from its medal records.
func WatchHighlights(ds *model.Dataset, sport, event, country string) Highlights {
	events := map[string]struct{}{}
	for _, s := range ds.Schedule {
		if s.Discipline == sport && s.Event != "" {
			events[s.Event] = struct{}{}
		}
	}
	countries := map[string]struct{}{}
	for _, m := range ds.Medals {
		if m.Discipline == sport && m.Country != "" {
			countries[m.Country] = struct{}{}
		}
	}
	return Highlights{
		Sport:      sport,
		Query:      HighlightsQuery(sport, event, country),
		URL:        HighlightsURL(sport, event, country),
		Events:     sortedKeys(events),
		Countries:  sortedKeys(countries),
		QuickLinks: QuickLinks(),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
