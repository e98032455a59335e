package venue

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/okian/podium/internal/domain/types"
)

// Map centre used by venue maps (Paris).
const (
	CenterLatitude  = 48.8566
	CenterLongitude = 2.3522
)

type categoryKeywords struct {
	category types.VenueType
	keywords []string
}

// categories are tried in order; the first category with a matching keyword wins.
var categories = []categoryKeywords{
	{types.Stadium, []string{"Stadium", "Stade", "Arena"}},
	{types.Aquatic, []string{"Aquatics", "Nautical", "Marina", "Swimming"}},
	{types.Indoor, []string{"Arena", "Palais", "Centre", "Velodrome"}},
	{types.Outdoor, []string{"Hill", "Beach", "Golf", "Park"}},
	{types.Historic, []string{"Château", "Invalides", "Trocadéro", "Pont", "Hôtel de Ville"}},
}

// Palette is the display colour of a venue category.
type Palette struct {
	Hex  string `json:"hex"`
	RGBA [4]int `json:"rgba"`
}

var palettes = map[types.VenueType]Palette{
	types.Stadium:  {"#e74c3c", [4]int{231, 76, 60, 200}},
	types.Aquatic:  {"#3498db", [4]int{52, 152, 219, 200}},
	types.Indoor:   {"#9b59b6", [4]int{155, 89, 182, 200}},
	types.Outdoor:  {"#2ecc71", [4]int{46, 204, 113, 200}},
	types.Historic: {"#f39c12", [4]int{243, 156, 18, 200}},
	types.Other:    {"#95a5a6", [4]int{149, 165, 166, 200}},
}

// CategoryOf classifies a venue by keyword, case-insensitively. No match
// yields types.Other.
func CategoryOf(name string) types.VenueType {
	folded := fold(name)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(folded, fold(kw)) {
				return c.category
			}
		}
	}
	return types.Other
}

// PaletteOf returns the colours for a category, falling back to Other.
func PaletteOf(t types.VenueType) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[types.Other]
}

// Palettes returns a copy of the category legend.
func Palettes() map[types.VenueType]Palette {
	out := make(map[types.VenueType]Palette, len(palettes))
	for k, v := range palettes {
		out[k] = v
	}
	return out
}

// fold case-folds s for case-insensitive containment checks. A Caser holds
// state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
