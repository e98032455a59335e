package dataset

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

func medalType(raw string) types.MedalType {
	if m, ok := types.ParseMedalType(raw); ok {
		return m
	}
	return types.MedalType(raw)
}

func mapAthletes(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Athletes = append(ds.Athletes, model.Athlete{
			Code:         r.str("code"),
			Name:         r.str("name"),
			Gender:       r.str("gender"),
			Function:     r.str("function"),
			Country:      r.str("country"),
			CountryCode:  r.str("country_code"),
			Nationality:  r.str("nationality"),
			BirthDate:    r.time("birth_date"),
			BirthPlace:   r.str("birth_place"),
			BirthCountry: r.str("birth_country"),
			Height:       r.float("height"),
			Weight:       r.float("weight"),
			Disciplines:  r.str("disciplines"),
			Events:       r.str("events"),
			Coach:        r.str("coach"),
		})
	})
}

func mapMedals(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Medals = append(ds.Medals, model.Medal{
			MedalType:   medalType(r.str("medal_type")),
			Date:        r.time("medal_date"),
			Name:        r.str("name"),
			Gender:      r.str("gender"),
			Discipline:  r.str("discipline"),
			Event:       r.str("event"),
			EventType:   r.str("event_type"),
			Country:     r.str("country"),
			CountryCode: r.str("country_code"),
		})
	})
}

func mapMedalTotals(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.MedalTotals = append(ds.MedalTotals, model.MedalTotal{
			CountryCode: r.str("country_code"),
			Country:     r.str("country"),
			CountryLong: r.str("country_long"),
			Gold:        r.int(string(types.Gold)),
			Silver:      r.int(string(types.Silver)),
			Bronze:      r.int(string(types.Bronze)),
			Total:       r.int("Total"),
		})
	})
}

func mapEvents(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Events = append(ds.Events, model.Event{
			Event:     r.str("event"),
			Tag:       r.str("tag"),
			Sport:     r.str("sport"),
			SportCode: r.str("sport_code"),
		})
	})
}

func mapNOCs(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.NOCs = append(ds.NOCs, model.NOC{
			Code:        r.str("code"),
			Country:     r.str("country"),
			CountryLong: r.str("country_long"),
		})
	})
}

func mapSchedule(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Schedule = append(ds.Schedule, model.ScheduleEntry{
			Start:      r.time("start_date"),
			End:        r.time("end_date"),
			Status:     r.str("status"),
			Discipline: r.str("discipline"),
			Event:      r.str("event"),
			EventType:  r.str("event_type"),
			Phase:      r.str("phase"),
			Gender:     r.str("gender"),
			Venue:      r.str("venue"),
			MedalEvent: r.bool("event_medal"),
		})
	})
}

// Coordinates are optional columns; rows without them are geocoded later.
func mapVenues(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Venues = append(ds.Venues, model.Venue{
			Name:      r.str("venue"),
			Sports:    r.str("sports"),
			Latitude:  r.floatPtr("latitude"),
			Longitude: r.floatPtr("longitude"),
		})
	})
}

func mapCoaches(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Coaches = append(ds.Coaches, model.Coach{
			Code:        r.str("code"),
			Name:        r.str("name"),
			Gender:      r.str("gender"),
			Function:    r.str("function"),
			Category:    r.str("category"),
			Country:     r.str("country"),
			CountryCode: r.str("country_code"),
			Disciplines: r.str("disciplines"),
			Events:      r.str("events"),
			BirthDate:   r.time("birth_date"),
		})
	})
}

func mapTeams(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Teams = append(ds.Teams, model.Team{
			Code:        r.str("code"),
			Team:        r.str("team"),
			Gender:      r.str("team_gender"),
			Country:     r.str("country"),
			CountryCode: r.str("country_code"),
			Discipline:  r.str("discipline"),
			NumAthletes: r.int("num_athletes"),
			NumCoaches:  r.int("num_coaches"),
		})
	})
}

func mapMedallists(t *table, ds *model.Dataset) {
	t.each(func(r row) {
		ds.Medallists = append(ds.Medallists, model.Medallist{
			Name:        r.str("name"),
			Gender:      r.str("gender"),
			Country:     r.str("country"),
			CountryCode: r.str("country_code"),
			MedalType:   medalType(r.str("medal_type")),
			Date:        r.time("medal_date"),
			Discipline:  r.str("discipline"),
			Event:       r.str("event"),
			Team:        r.str("team"),
		})
	})
}
