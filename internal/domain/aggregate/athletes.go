package aggregate

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// FilterAthletes applies country membership, sport containment in the
// disciplines column and gender membership.
func FilterAthletes(ds *model.Dataset, f Filter) []model.Athlete {
	out := make([]model.Athlete, 0, len(ds.Athletes))
	for _, a := range ds.Athletes {
		if in(a.Country, f.Countries) && ContainsAny(a.Disciplines, f.Sports) && in(a.Gender, f.Genders) {
			out = append(out, a)
		}
	}
	return out
}

// AthleteSummary holds headline athlete counts. AverageAge is nil when no
// filtered athlete has a known age.
type AthleteSummary struct {
	Athletes    int      `json:"athletes"`
	Countries   int      `json:"countries"`
	Disciplines int      `json:"disciplines"`
	AverageAge  *float64 `json:"average_age"`
	NoData      bool     `json:"no_data"`
}

// SummarizeAthletes counts athletes, distinct countries and distinct
// discipline lists, and averages the known ages.
func SummarizeAthletes(ds *model.Dataset, f Filter) AthleteSummary {
	athletes := FilterAthletes(ds, f)
	countries := map[string]struct{}{}
	disciplines := map[string]struct{}{}
	ageSum, aged := 0, 0
	for _, a := range athletes {
		if a.Country != "" {
			countries[a.Country] = struct{}{}
		}
		if a.Disciplines != "" {
			disciplines[a.Disciplines] = struct{}{}
		}
		if a.Age != nil {
			ageSum += *a.Age
			aged++
		}
	}
	s := AthleteSummary{
		Athletes:    len(athletes),
		Countries:   len(countries),
		Disciplines: len(disciplines),
		NoData:      len(athletes) == 0,
	}
	if aged > 0 {
		avg := float64(ageSum) / float64(aged)
		s.AverageAge = &avg
	}
	return s
}

// AgeGroup is the age sample of one group with its five-number summary.
type AgeGroup struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Ages   []int   `json:"ages"`
}

// AgeDistribution splits known ages by gender and by the most common
// discipline lists.
type AgeDistribution struct {
	ByGender []AgeGroup `json:"by_gender"`
	BySport  []AgeGroup `json:"by_sport"`
	NoData   bool       `json:"no_data"`
}

// Ages builds the age distribution of the filtered athletes. The sport
// breakdown keeps the topSports most frequent cleaned discipline lists.
func Ages(ds *model.Dataset, f Filter, topSports int) AgeDistribution {
	byGender := map[string][]int{}
	bySport := map[string][]int{}
	for _, a := range FilterAthletes(ds, f) {
		if a.Age == nil {
			continue
		}
		byGender[a.Gender] = append(byGender[a.Gender], *a.Age)
		sport := "Unknown"
		if a.Disciplines != "" {
			sport = CleanList(a.Disciplines)
		}
		bySport[sport] = append(bySport[sport], *a.Age)
	}

	out := AgeDistribution{
		ByGender: ageGroups(byGender),
		BySport:  ageGroups(bySport),
	}
	sort.SliceStable(out.BySport, func(i, j int) bool { return out.BySport[i].Count > out.BySport[j].Count })
	if topSports > 0 && len(out.BySport) > topSports {
		out.BySport = out.BySport[:topSports]
	}
	out.NoData = len(out.ByGender) == 0
	return out
}

func ageGroups(groups map[string][]int) []AgeGroup {
	out := make([]AgeGroup, 0, len(groups))
	for name, ages := range groups {
		out = append(out, newAgeGroup(name, ages))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}

func newAgeGroup(name string, ages []int) AgeGroup {
	sorted := append([]int(nil), ages...)
	sort.Ints(sorted)
	sum := 0
	for _, a := range sorted {
		sum += a
	}
	return AgeGroup{
		Group:  name,
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Mean:   float64(sum) / float64(len(sorted)),
		Ages:   sorted,
	}
}

// quantile interpolates linearly between the closest ranks of a sorted,
// non-empty sample.
func quantile(sorted []int, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo+1 >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}

// GenderCount is the number of athletes of one gender in a group.
type GenderCount struct {
	Group  string `json:"group,omitempty"`
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// GenderBreakdown is the gender split of one scope plus its per-group
// detail.
type GenderBreakdown struct {
	Scope  string        `json:"scope"`
	Totals []GenderCount `json:"totals"`
	Groups []GenderCount `json:"groups,omitempty"`
	NoData bool          `json:"no_data"`
}

// GenderDistribution holds the world, continent and country views.
// Continent and Country are nil when not requested.
type GenderDistribution struct {
	World     GenderBreakdown  `json:"world"`
	Continent *GenderBreakdown `json:"continent,omitempty"`
	Country   *GenderBreakdown `json:"country,omitempty"`
}

// maxCountryGroups caps the per-discipline rows of the country view.
const maxCountryGroups = 20

// Genders splits filtered athletes by gender worldwide, within continent
// (grouped by country) and within countryName (grouped by discipline
// list, first 20 groups).
func Genders(ds *model.Dataset, f Filter, continent types.Continent, countryName string) GenderDistribution {
	athletes := FilterAthletes(ds, f)
	out := GenderDistribution{World: breakdown("World", athletes, nil, 0)}

	if continent != "" {
		var sub []model.Athlete
		for _, a := range athletes {
			if continentOrUnknown(a.Continent) == continent {
				sub = append(sub, a)
			}
		}
		b := breakdown(string(continent), sub, func(a model.Athlete) string { return a.Country }, 0)
		out.Continent = &b
	}

	if countryName != "" {
		var sub []model.Athlete
		for _, a := range athletes {
			if a.Country == countryName {
				sub = append(sub, a)
			}
		}
		b := breakdown(countryName, sub, func(a model.Athlete) string { return a.Disciplines }, maxCountryGroups)
		out.Country = &b
	}
	return out
}

func breakdown(scope string, athletes []model.Athlete, groupOf func(model.Athlete) string, maxGroups int) GenderBreakdown {
	b := GenderBreakdown{Scope: scope, NoData: len(athletes) == 0}

	totals := map[string]int{}
	groups := map[[2]string]int{}
	for _, a := range athletes {
		if a.Gender == "" {
			continue
		}
		totals[a.Gender]++
		if groupOf != nil {
			if g := groupOf(a); g != "" {
				groups[[2]string{g, a.Gender}]++
			}
		}
	}

	b.Totals = make([]GenderCount, 0, len(totals))
	for g, n := range totals {
		b.Totals = append(b.Totals, GenderCount{Gender: g, Count: n})
	}
	sort.Slice(b.Totals, func(i, j int) bool {
		if b.Totals[i].Count != b.Totals[j].Count {
			return b.Totals[i].Count > b.Totals[j].Count
		}
		return b.Totals[i].Gender < b.Totals[j].Gender
	})

	if groupOf != nil {
		b.Groups = make([]GenderCount, 0, len(groups))
		for k, n := range groups {
			b.Groups = append(b.Groups, GenderCount{Group: k[0], Gender: k[1], Count: n})
		}
		sort.Slice(b.Groups, func(i, j int) bool {
			if b.Groups[i].Group != b.Groups[j].Group {
				return b.Groups[i].Group < b.Groups[j].Group
			}
			return b.Groups[i].Gender < b.Groups[j].Gender
		})
		if maxGroups > 0 && len(b.Groups) > maxGroups {
			b.Groups = b.Groups[:maxGroups]
		}
	}
	return b
}

// AthleteMedals is one medallist's tally.
type AthleteMedals struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Discipline string `json:"discipline"`
	Gold       int    `json:"gold"`
	Silver     int    `json:"silver"`
	Bronze     int    `json:"bronze"`
	Total      int    `json:"total"`
}

// AthleteRanking is the top medallists list.
type AthleteRanking struct {
	Athletes []AthleteMedals `json:"athletes"`
	NoData   bool            `json:"no_data"`
}

// TopAthletes tallies medallists by name and returns the n best by Gold,
// Silver and Bronze, all descending. Sports match the discipline by
// case-insensitive containment. Country and discipline come from each
// athlete's first medal record.
func TopAthletes(ds *model.Dataset, f Filter, n int) AthleteRanking {
	byName := map[string]*AthleteMedals{}
	for _, m := range ds.Medallists {
		if !in(m.Country, f.Countries) || !in(m.Gender, f.Genders) || !ContainsAnyFold(m.Discipline, f.Sports) {
			continue
		}
		a, ok := byName[m.Name]
		if !ok {
			a = &AthleteMedals{Name: m.Name, Country: m.Country, Discipline: m.Discipline}
			byName[m.Name] = a
		}
		a.Total++
		switch m.MedalType {
		case types.Gold:
			a.Gold++
		case types.Silver:
			a.Silver++
		case types.Bronze:
			a.Bronze++
		}
	}

	rows := make([]AthleteMedals, 0, len(byName))
	for _, a := range byName {
		rows = append(rows, *a)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		return a.Bronze > b.Bronze
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return AthleteRanking{Athletes: rows, NoData: len(rows) == 0}
}
