package model

import "time"

// Dataset names, matching the CSV file stems.
const (
	DatasetSchedules   = "schedules"
	DatasetMedals      = "medals"
	DatasetVenues      = "venues"
	DatasetAthletes    = "athletes"
	DatasetMedalTotals = "medals_total"
	DatasetEvents      = "events"
	DatasetNOCs        = "nocs"
	DatasetCoaches     = "coaches"
	DatasetTeams       = "teams"
	DatasetMedallists  = "medallists"
)

// DatasetNames lists every dataset the service requires.
func DatasetNames() []string {
	return []string{
		DatasetSchedules, DatasetMedals, DatasetVenues, DatasetAthletes, DatasetMedalTotals,
		DatasetEvents, DatasetNOCs, DatasetCoaches, DatasetTeams, DatasetMedallists,
	}
}

// Dataset is the complete read-only snapshot the views are computed from.
type Dataset struct {
	Athletes    []Athlete
	Medals      []Medal
	MedalTotals []MedalTotal
	Events      []Event
	NOCs        []NOC
	Schedule    []ScheduleEntry
	Venues      []Venue
	Coaches     []Coach
	Teams       []Team
	Medallists  []Medallist

	LoadedAt time.Time
}

// Counts returns the row count per dataset name.
func (d *Dataset) Counts() map[string]int {
	if d == nil {
		return map[string]int{}
	}
	return map[string]int{
		DatasetSchedules:   len(d.Schedule),
		DatasetMedals:      len(d.Medals),
		DatasetVenues:      len(d.Venues),
		DatasetAthletes:    len(d.Athletes),
		DatasetMedalTotals: len(d.MedalTotals),
		DatasetEvents:      len(d.Events),
		DatasetNOCs:        len(d.NOCs),
		DatasetCoaches:     len(d.Coaches),
		DatasetTeams:       len(d.Teams),
		DatasetMedallists:  len(d.Medallists),
	}
}
