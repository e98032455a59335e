package aggregate

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Overview holds the headline KPIs.
type Overview struct {
	Athletes  int  `json:"athletes"`
	Countries int  `json:"countries"`
	Sports    int  `json:"sports"`
	Events    int  `json:"events"`
	Medals    int  `json:"medals"`
	NoData    bool `json:"no_data"`
}

// MedalCount is the number of medals of one type.
type MedalCount struct {
	Medal types.MedalType `json:"medal"`
	Count int             `json:"count"`
}

// MedalDistribution is the split of medals by type.
type MedalDistribution struct {
	Medals []MedalCount `json:"medals"`
	NoData bool         `json:"no_data"`
}

// Standings is a ranked slice of the medal table.
type Standings struct {
	Rows   []types.Entry `json:"rows"`
	NoData bool          `json:"no_data"`
}

// OverviewAthletes applies the overview filter to athletes: country by
// membership and sport by containment in the disciplines column.
func OverviewAthletes(ds *model.Dataset, f Filter) []model.Athlete {
	out := make([]model.Athlete, 0, len(ds.Athletes))
	for _, a := range ds.Athletes {
		if in(a.Country, f.Countries) && ContainsAny(a.Disciplines, f.Sports) {
			out = append(out, a)
		}
	}
	return out
}

// FilterTotals restricts the medal table to the selected countries.
func FilterTotals(ds *model.Dataset, f Filter) []model.MedalTotal {
	out := make([]model.MedalTotal, 0, len(ds.MedalTotals))
	for _, t := range ds.MedalTotals {
		if in(t.Country, f.Countries) {
			out = append(out, t)
		}
	}
	return out
}

// SelectedTotal sums the selected medal types of one medal table row.
func SelectedTotal(t model.MedalTotal, medals []types.MedalType) int {
	n := 0
	for _, m := range medals {
		n += t.Count(m)
	}
	return n
}

// OverviewKPIs counts athletes, committees, sports, events and medals
// after filtering each table on the dimensions it carries.
func OverviewKPIs(ds *model.Dataset, f Filter) Overview {
	var o Overview
	o.Athletes = len(OverviewAthletes(ds, f))

	for _, n := range ds.NOCs {
		if in(n.Country, f.Countries) {
			o.Countries++
		}
	}

	sports := map[string]struct{}{}
	for _, e := range ds.Events {
		if in(e.Sport, f.Sports) {
			o.Events++
			sports[e.Sport] = struct{}{}
		}
	}
	o.Sports = len(sports)

	medals := f.MedalTypes()
	for _, t := range FilterTotals(ds, f) {
		o.Medals += SelectedTotal(t, medals)
	}

	o.NoData = o.Athletes == 0 && o.Countries == 0 && o.Events == 0 && o.Medals == 0
	return o
}

// Distribution counts medals of each selected type in the filtered table.
func Distribution(ds *model.Dataset, f Filter) MedalDistribution {
	totals := FilterTotals(ds, f)
	medals := f.MedalTypes()
	out := MedalDistribution{Medals: make([]MedalCount, 0, len(medals))}
	sum := 0
	for _, m := range medals {
		n := 0
		for _, t := range totals {
			n += t.Count(m)
		}
		sum += n
		out.Medals = append(out.Medals, MedalCount{Medal: m, Count: n})
	}
	out.NoData = sum == 0
	return out
}

// TopStandings returns the n best countries by the sum of the selected
// medal types. Ties are broken by Gold, Silver and Bronze, all descending;
// rows still equal keep their table order.
func TopStandings(ds *model.Dataset, f Filter, n int) Standings {
	medals := f.MedalTypes()
	totals := FilterTotals(ds, f)
	entries := make([]types.Entry, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, types.Entry{
			Country:     t.Country,
			CountryCode: t.CountryCode,
			Gold:        t.Gold,
			Silver:      t.Silver,
			Bronze:      t.Bronze,
			Total:       SelectedTotal(t, medals),
		})
	}
	sortEntries(entries)
	assignRanksWithTies(entries)
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	sum := 0
	for _, e := range entries {
		sum += e.Total
	}
	return Standings{Rows: entries, NoData: sum == 0}
}

func sortEntries(entries []types.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		return ahead(a.Total, a.Gold, a.Silver, a.Bronze, b.Total, b.Gold, b.Silver, b.Bronze)
	})
}

// ahead orders two medal records by total, then gold, silver and bronze,
// all descending.
func ahead(ta, ga, sa, ba, tb, gb, sb, bb int) bool {
	if ta != tb {
		return ta > tb
	}
	if ga != gb {
		return ga > gb
	}
	if sa != sb {
		return sa > sb
	}
	return ba > bb
}

// assignRanksWithTies gives fully tied rows the same rank; the next
// distinct row takes the following rank.
func assignRanksWithTies(entries []types.Entry) {
	rank := 0
	for i := range entries {
		if i == 0 || !sameStanding(entries[i-1], entries[i]) {
			rank++
		}
		entries[i].Rank = rank
	}
}

func sameStanding(a, b types.Entry) bool {
	return a.Total == b.Total && a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze
}
