package aggregate

import (
	"sort"

	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// CountryMedals is one country's medal counts. Total covers only the
// selected medal types.
type CountryMedals struct {
	Country     string          `json:"country"`
	CountryCode string          `json:"country_code"`
	Continent   types.Continent `json:"continent"`
	Gold        int             `json:"gold"`
	Silver      int             `json:"silver"`
	Bronze      int             `json:"bronze"`
	Total       int             `json:"total"`
}

// CountryList is a list of countries with their medals.
type CountryList struct {
	Countries []CountryMedals `json:"countries"`
	NoData    bool            `json:"no_data"`
}

// ContinentMedals is the medal sum of one continent.
type ContinentMedals struct {
	Continent types.Continent `json:"continent"`
	Gold      int             `json:"gold"`
	Silver    int             `json:"silver"`
	Bronze    int             `json:"bronze"`
}

// ContinentList is the per-continent rollup.
type ContinentList struct {
	Continents []ContinentMedals `json:"continents"`
	NoData     bool              `json:"no_data"`
}

// HierarchyNode is one continent, country, medal leaf with a positive count.
type HierarchyNode struct {
	Continent types.Continent `json:"continent"`
	Country   string          `json:"country"`
	Medal     string          `json:"medal"`
	Count     int             `json:"count"`
}

// Hierarchy feeds sunburst and treemap charts.
type Hierarchy struct {
	Nodes  []HierarchyNode `json:"nodes"`
	NoData bool            `json:"no_data"`
}

// Summary is the headline count of the filtered medal table.
type Summary struct {
	Countries int  `json:"countries"`
	Gold      int  `json:"gold"`
	Silver    int  `json:"silver"`
	Bronze    int  `json:"bronze"`
	NoData    bool `json:"no_data"`
}

func countryMedals(t model.MedalTotal, medals []types.MedalType) CountryMedals {
	return CountryMedals{
		Country:     t.Country,
		CountryCode: t.CountryCode,
		Continent:   continentOrUnknown(t.Continent),
		Gold:        t.Gold,
		Silver:      t.Silver,
		Bronze:      t.Bronze,
		Total:       SelectedTotal(t, medals),
	}
}

func continentOrUnknown(c types.Continent) types.Continent {
	if c == "" {
		return types.Unknown
	}
	return c
}

// TopCountries returns the n countries with the largest selected total.
// Equal totals fall back to gold, silver and bronze counts, then table order.
func TopCountries(ds *model.Dataset, f Filter, n int) CountryList {
	medals := f.MedalTypes()
	totals := FilterTotals(ds, f)
	rows := make([]CountryMedals, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, countryMedals(t, medals))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		return ahead(a.Total, a.Gold, a.Silver, a.Bronze, b.Total, b.Gold, b.Silver, b.Bronze)
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return CountryList{Countries: rows, NoData: len(rows) == 0}
}

// ByContinent sums gold, silver and bronze per continent, most gold first.
func ByContinent(ds *model.Dataset, f Filter) ContinentList {
	sums := map[types.Continent]*ContinentMedals{}
	for _, t := range FilterTotals(ds, f) {
		c := continentOrUnknown(t.Continent)
		s, ok := sums[c]
		if !ok {
			s = &ContinentMedals{Continent: c}
			sums[c] = s
		}
		s.Gold += t.Gold
		s.Silver += t.Silver
		s.Bronze += t.Bronze
	}

	rows := make([]ContinentMedals, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, *s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Continent < rows[j].Continent })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Gold > rows[j].Gold })
	return ContinentList{Continents: rows, NoData: len(rows) == 0}
}

// MedalHierarchy lists continent, country and medal type leaves for the
// selected medal types, skipping zero counts.
func MedalHierarchy(ds *model.Dataset, f Filter) Hierarchy {
	medals := f.MedalTypes()
	var nodes []HierarchyNode
	for _, t := range FilterTotals(ds, f) {
		for _, m := range medals {
			if n := t.Count(m); n > 0 {
				nodes = append(nodes, HierarchyNode{
					Continent: continentOrUnknown(t.Continent),
					Country:   t.Country,
					Medal:     m.Short(),
					Count:     n,
				})
			}
		}
	}
	return Hierarchy{Nodes: nodes, NoData: len(nodes) == 0}
}

// SummaryStats counts the displayed countries and sums each medal type.
func SummaryStats(ds *model.Dataset, f Filter) Summary {
	totals := FilterTotals(ds, f)
	s := Summary{Countries: len(totals), NoData: len(totals) == 0}
	for _, t := range totals {
		s.Gold += t.Gold
		s.Silver += t.Silver
		s.Bronze += t.Bronze
	}
	return s
}

// ChoroplethRow is one country on the world map.
type ChoroplethRow struct {
	Country     string          `json:"country"`
	CountryCode string          `json:"country_code"`
	ISO3        string          `json:"iso3"`
	Continent   types.Continent `json:"continent"`
	Gold        int             `json:"gold"`
	Silver      int             `json:"silver"`
	Bronze      int             `json:"bronze"`
	Total       int             `json:"total"`
}

// CountryMedalCount is the number of medals of one type won by a country.
type CountryMedalCount struct {
	Country string          `json:"country"`
	Medal   types.MedalType `json:"medal"`
	Count   int             `json:"count"`
}

// Choropleth is the world map plus the per-country breakdown of one
// continent.
type Choropleth struct {
	Countries       []ChoroplethRow     `json:"countries"`
	Continent       types.Continent     `json:"continent,omitempty"`
	ContinentDetail []CountryMedalCount `json:"continent_detail"`
	NoData          bool                `json:"no_data"`
	ContinentNoData bool                `json:"continent_no_data"`
}

type choroplethKey struct {
	country, code string
	continent     types.Continent
}

// WorldMap counts individual medal records per country, keyed for map
// rendering by ISO-3 code. Medal records are restricted to the selected
// types and countries; the continent detail then narrows to continent.
func WorldMap(ds *model.Dataset, f Filter, continent types.Continent) Choropleth {
	medals := f.MedalTypes()
	byCountry := map[choroplethKey]*ChoroplethRow{}
	detail := map[[2]string]int{}

	for _, m := range ds.Medals {
		if !containsMedal(medals, m.MedalType) || !in(m.Country, f.Countries) {
			continue
		}
		c := continentOrUnknown(m.Continent)
		k := choroplethKey{country: m.Country, code: m.CountryCode, continent: c}
		row, ok := byCountry[k]
		if !ok {
			row = &ChoroplethRow{
				Country:     m.Country,
				CountryCode: m.CountryCode,
				ISO3:        country.ISO3Of(m.CountryCode),
				Continent:   c,
			}
			byCountry[k] = row
		}
		switch m.MedalType {
		case types.Gold:
			row.Gold++
		case types.Silver:
			row.Silver++
		case types.Bronze:
			row.Bronze++
		}
		row.Total++

		if continent != "" && c == continent {
			detail[[2]string{m.Country, string(m.MedalType)}]++
		}
	}

	out := Choropleth{Continent: continent, Countries: make([]ChoroplethRow, 0, len(byCountry))}
	for _, row := range byCountry {
		out.Countries = append(out.Countries, *row)
	}
	sort.Slice(out.Countries, func(i, j int) bool {
		a, b := out.Countries[i], out.Countries[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.CountryCode != b.CountryCode {
			return a.CountryCode < b.CountryCode
		}
		return a.Continent < b.Continent
	})

	out.ContinentDetail = make([]CountryMedalCount, 0, len(detail))
	for k, n := range detail {
		out.ContinentDetail = append(out.ContinentDetail, CountryMedalCount{
			Country: k[0], Medal: types.MedalType(k[1]), Count: n,
		})
	}
	sortCountryMedalCounts(out.ContinentDetail)

	out.NoData = len(out.Countries) == 0
	out.ContinentNoData = len(out.ContinentDetail) == 0
	return out
}

func sortCountryMedalCounts(rows []CountryMedalCount) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Country != rows[j].Country {
			return rows[i].Country < rows[j].Country
		}
		return rows[i].Medal < rows[j].Medal
	})
}
