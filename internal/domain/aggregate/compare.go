package aggregate

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Head-to-head statistic names, in display order.
const (
	StatTotal  = "Total medals"
	StatGold   = "Gold"
	StatSilver = "Silver"
	StatBronze = "Bronze"
	StatSports = "Sports"
	StatEvents = "Events"
)

// Stat is one named figure of a country summary.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CountrySummary is the fixed, ordered set of medal statistics of one
// country.
type CountrySummary struct {
	Country string `json:"country"`
	Stats   []Stat `json:"stats"`
}

// Total is the country's medal count.
func (s CountrySummary) Total() int {
	for _, st := range s.Stats {
		if st.Name == StatTotal {
			return st.Value
		}
	}
	return 0
}

// Split is one statistic compared across two countries. The percentages
// add up to 100, or are 50/50 when both values are zero.
type Split struct {
	Name     string  `json:"name"`
	A        int     `json:"a"`
	B        int     `json:"b"`
	PercentA float64 `json:"percent_a"`
	PercentB float64 `json:"percent_b"`
}

// HeadToHead compares two countries.
type HeadToHead struct {
	A       CountrySummary `json:"a"`
	B       CountrySummary `json:"b"`
	Splits  []Split        `json:"splits"`
	TotalA  int            `json:"total_a"`
	TotalB  int            `json:"total_b"`
	Outcome types.Outcome  `json:"outcome"`
}

// SummarizeCountry counts a country's medal records by type, plus its
// distinct disciplines and events.
func SummarizeCountry(ds *model.Dataset, name string) CountrySummary {
	var total, gold, silver, bronze int
	sports := map[string]struct{}{}
	events := map[string]struct{}{}
	for _, m := range ds.Medals {
		if m.Country != name {
			continue
		}
		total++
		switch m.MedalType {
		case types.Gold:
			gold++
		case types.Silver:
			silver++
		case types.Bronze:
			bronze++
		}
		if m.Discipline != "" {
			sports[m.Discipline] = struct{}{}
		}
		if m.Event != "" {
			events[m.Event] = struct{}{}
		}
	}
	return CountrySummary{
		Country: name,
		Stats: []Stat{
			{Name: StatTotal, Value: total},
			{Name: StatGold, Value: gold},
			{Name: StatSilver, Value: silver},
			{Name: StatBronze, Value: bronze},
			{Name: StatSports, Value: len(sports)},
			{Name: StatEvents, Value: len(events)},
		},
	}
}

// Compare builds the head-to-head view of countries a and b. The overall
// outcome compares total medals only; equal totals are a tie.
func Compare(ds *model.Dataset, a, b string) HeadToHead {
	h := HeadToHead{A: SummarizeCountry(ds, a), B: SummarizeCountry(ds, b)}
	h.Splits = make([]Split, len(h.A.Stats))
	for i := range h.A.Stats {
		va, vb := h.A.Stats[i].Value, h.B.Stats[i].Value
		s := Split{Name: h.A.Stats[i].Name, A: va, B: vb, PercentA: 50, PercentB: 50}
		if total := va + vb; total > 0 {
			s.PercentA = float64(va) / float64(total) * 100
			s.PercentB = float64(vb) / float64(total) * 100
		}
		h.Splits[i] = s
	}

	h.TotalA, h.TotalB = h.A.Total(), h.B.Total()
	switch {
	case h.TotalA > h.TotalB:
		h.Outcome = types.OutcomeA
	case h.TotalB > h.TotalA:
		h.Outcome = types.OutcomeB
	default:
		h.Outcome = types.OutcomeTie
	}
	return h
}
