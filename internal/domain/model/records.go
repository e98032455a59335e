// Package model contains domain models passed between layers.
//
// Records are read-only snapshots of the CSV datasets. Derived fields
// (Continent, Age, venue coordinates and category) are filled in once at
// load time and never mutated afterwards.
package model

import (
	"time"

	"github.com/okian/podium/internal/domain/types"
)

// Athlete is one row of athletes.csv.
type Athlete struct {
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Function     string    `json:"function,omitempty"`
	Country      string    `json:"country"`
	CountryCode  string    `json:"country_code"`
	Nationality  string    `json:"nationality,omitempty"`
	BirthDate    time.Time `json:"birth_date"`
	BirthPlace   string    `json:"birth_place,omitempty"`
	BirthCountry string    `json:"birth_country,omitempty"`
	Height       float64   `json:"height,omitempty"`
	Weight       float64   `json:"weight,omitempty"`
	// Disciplines and Events are the raw bracketed lists, e.g. "['Golf']".
	Disciplines string `json:"disciplines"`
	Events      string `json:"events"`
	// Coach is free text; several names may be joined by commas or <br>.
	Coach string `json:"coach,omitempty"`

	// Age is nil when the birth date is absent.
	Age       *int            `json:"age"`
	Continent types.Continent `json:"continent"`
}

// Medal is one row of medals.csv.
type Medal struct {
	MedalType   types.MedalType `json:"medal_type"`
	Date        time.Time       `json:"medal_date"`
	Name        string          `json:"name"`
	Gender      string          `json:"gender"`
	Discipline  string          `json:"discipline"`
	Event       string          `json:"event"`
	EventType   string          `json:"event_type,omitempty"`
	Country     string          `json:"country"`
	CountryCode string          `json:"country_code"`
	Continent   types.Continent `json:"continent"`
}

// MedalTotal is one row of medals_total.csv.
type MedalTotal struct {
	CountryCode string          `json:"country_code"`
	Country     string          `json:"country"`
	CountryLong string          `json:"country_long,omitempty"`
	Gold        int             `json:"gold"`
	Silver      int             `json:"silver"`
	Bronze      int             `json:"bronze"`
	Total       int             `json:"total"`
	Continent   types.Continent `json:"continent"`
}

// Count returns the number of medals of type m.
func (t MedalTotal) Count(m types.MedalType) int {
	switch m {
	case types.Gold:
		return t.Gold
	case types.Silver:
		return t.Silver
	case types.Bronze:
		return t.Bronze
	}
	return 0
}

// Event is one row of events.csv.
type Event struct {
	Event     string `json:"event"`
	Tag       string `json:"tag,omitempty"`
	Sport     string `json:"sport"`
	SportCode string `json:"sport_code,omitempty"`
}

// NOC is one row of nocs.csv.
type NOC struct {
	Code        string `json:"code"`
	Country     string `json:"country"`
	CountryLong string `json:"country_long,omitempty"`
}

// ScheduleEntry is one row of schedules.csv. Start <= End is expected but
// not enforced.
type ScheduleEntry struct {
	Start      time.Time `json:"start_date"`
	End        time.Time `json:"end_date"`
	Status     string    `json:"status,omitempty"`
	Discipline string    `json:"discipline"`
	Event      string    `json:"event"`
	EventType  string    `json:"event_type,omitempty"`
	Phase      string    `json:"phase,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Venue      string    `json:"venue"`
	MedalEvent bool      `json:"medal_event"`
}

// Day returns the calendar day of the start time, formatted YYYY-MM-DD.
func (s ScheduleEntry) Day() string {
	if s.Start.IsZero() {
		return ""
	}
	return s.Start.Format(time.DateOnly)
}

// Venue is one row of venues.csv plus its resolved location.
type Venue struct {
	Name      string          `json:"venue"`
	Sports    string          `json:"sports,omitempty"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	Type      types.VenueType `json:"venue_type"`
	Color     string          `json:"color"`
	ColorRGBA [4]int          `json:"color_rgb"`
}

// Located reports whether both coordinates are known.
func (v Venue) Located() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// Coach is one row of coaches.csv.
type Coach struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender,omitempty"`
	Function    string    `json:"function,omitempty"`
	Category    string    `json:"category,omitempty"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code"`
	Disciplines string    `json:"disciplines,omitempty"`
	Events      string    `json:"events,omitempty"`
	BirthDate   time.Time `json:"birth_date"`
}

// Team is one row of teams.csv.
type Team struct {
	Code        string `json:"code"`
	Team        string `json:"team"`
	Gender      string `json:"team_gender,omitempty"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Discipline  string `json:"discipline"`
	NumAthletes int    `json:"num_athletes"`
	NumCoaches  int    `json:"num_coaches"`
}

// Medallist is one row of medallists.csv.
type Medallist struct {
	Name        string          `json:"name"`
	Gender      string          `json:"gender"`
	Country     string          `json:"country"`
	CountryCode string          `json:"country_code"`
	MedalType   types.MedalType `json:"medal_type"`
	Date        time.Time       `json:"medal_date"`
	Discipline  string          `json:"discipline"`
	Event       string          `json:"event"`
	Team        string          `json:"team,omitempty"`
}
