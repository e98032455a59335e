package aggregate

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Facets lists the values each filter dimension can take.
type Facets struct {
	Countries   []string          `json:"countries"`
	Sports      []string          `json:"sports"`
	Disciplines []string          `json:"disciplines"`
	Venues      []string          `json:"venues"`
	Continents  []types.Continent `json:"continents"`
	Genders     []string          `json:"genders"`
	MedalDays   []string          `json:"medal_days"`
}

// FacetsOf collects the distinct filter values present in the dataset.
// Sports are split out of the athletes' discipline lists; disciplines and
// venues come from the schedule.
func FacetsOf(ds *model.Dataset) Facets {
	countries := map[string]struct{}{}
	sports := map[string]struct{}{}
	genders := map[string]struct{}{}
	continents := map[types.Continent]struct{}{}
	for _, a := range ds.Athletes {
		add(countries, a.Country)
		add(genders, a.Gender)
		for _, s := range SplitList(a.Disciplines) {
			sports[s] = struct{}{}
		}
	}
	for _, t := range ds.MedalTotals {
		add(countries, t.Country)
		continents[continentOrUnknown(t.Continent)] = struct{}{}
	}

	disciplines := map[string]struct{}{}
	venues := map[string]struct{}{}
	for _, s := range ds.Schedule {
		add(disciplines, s.Discipline)
		add(venues, s.Venue)
	}

	f := Facets{
		Countries:   sortedKeys(countries),
		Sports:      sortedKeys(sports),
		Disciplines: sortedKeys(disciplines),
		Venues:      sortedKeys(venues),
		Genders:     sortedKeys(genders),
		MedalDays:   MedalDays(ds),
	}
	for _, c := range append(types.Continents(), types.Unknown) {
		if _, ok := continents[c]; ok {
			f.Continents = append(f.Continents, c)
		}
	}
	return f
}

func add(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}
