// Package types contains the small value types shared across the application.
package types

import "strings"

// Continent is a coarse geographic grouping of countries.
type Continent string

// Continents.
const (
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
	Unknown      Continent = "Unknown"
)

// Continents returns the known continents in display order. Unknown is excluded.
func Continents() []Continent {
	return []Continent{Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania}
}

// ParseContinent matches a continent name case-insensitively.
func ParseContinent(s string) (Continent, bool) {
	s = strings.TrimSpace(s)
	for _, c := range append(Continents(), Unknown) {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return Unknown, false
}

// VenueType is the coarse category of a competition venue.
type VenueType string

// Venue categories.
const (
	Stadium  VenueType = "Stadium"
	Aquatic  VenueType = "Aquatic"
	Indoor   VenueType = "Indoor"
	Outdoor  VenueType = "Outdoor"
	Historic VenueType = "Historic"
	Other    VenueType = "Other"
)

// MedalType is one of the three podium medals, spelled as in the datasets.
type MedalType string

// Medal types.
const (
	Gold   MedalType = "Gold Medal"
	Silver MedalType = "Silver Medal"
	Bronze MedalType = "Bronze Medal"
)

// MedalTypes returns all medal types, best first.
func MedalTypes() []MedalType {
	return []MedalType{Gold, Silver, Bronze}
}

// Short returns "Gold", "Silver" or "Bronze".
func (m MedalType) Short() string {
	return strings.TrimSuffix(string(m), " Medal")
}

// ParseMedalType accepts "Gold Medal", "gold", "G" or the numeric medal code.
func ParseMedalType(s string) (MedalType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold medal", "gold", "g", "1":
		return Gold, true
	case "silver medal", "silver", "s", "2":
		return Silver, true
	case "bronze medal", "bronze", "b", "3":
		return Bronze, true
	}
	return "", false
}

// Outcome is the result of a two-way comparison.
type Outcome string

// Comparison outcomes. A tie is a valid result; neither side wins.
const (
	OutcomeA   Outcome = "a"
	OutcomeB   Outcome = "b"
	OutcomeTie Outcome = "tie"
)

// Entry represents a ranked medal table row.
type Entry struct {
	Rank        int    `json:"rank"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	Total       int    `json:"total"`
}
