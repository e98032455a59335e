package aggregate

import (
	"strings"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

var coachRoles = map[string]string{
	"C":  "Coach",
	"HC": "Head Coach",
	"AC": "Assistant Coach",
}

// CoachRole expands a coach category code. Unknown codes are returned as
// is and an empty code reads as "Coach".
func CoachRole(category string) string {
	if category == "" {
		return "Coach"
	}
	if role, ok := coachRoles[category]; ok {
		return role
	}
	return category
}

// MedalTally counts medals by type.
type MedalTally struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

// CoachProfile is the coaches.csv row matched to an athlete.
type CoachProfile struct {
	model.Coach
	Role      string `json:"role"`
	Sports    string `json:"sports"`
	EventList string `json:"events_clean"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// Profile is the detail card of one athlete.
type Profile struct {
	model.Athlete
	Sports    string        `json:"sports"`
	EventList string        `json:"events_clean"`
	Coaches   string        `json:"coaches"`
	CoachName string        `json:"coach_name,omitempty"`
	Coach     *CoachProfile `json:"coach_profile,omitempty"`
	Medals    MedalTally    `json:"medals"`
	PhotoURL  string        `json:"photo_url,omitempty"`
}

// AthleteProfile finds the first athlete named exactly name. The coach
// card is the first coach whose name contains the first word of the
// athlete's primary coach, ignoring case.
func AthleteProfile(ds *model.Dataset, name string) (Profile, bool) {
	var athlete *model.Athlete
	for i := range ds.Athletes {
		if ds.Athletes[i].Name == name {
			athlete = &ds.Athletes[i]
			break
		}
	}
	if athlete == nil {
		return Profile{}, false
	}

	p := Profile{
		Athlete:   *athlete,
		Sports:    CleanList(athlete.Disciplines),
		EventList: CleanList(athlete.Events),
		Coaches:   replaceBreaks(athlete.Coach, ", "),
		CoachName: PrimaryCoach(athlete.Coach),
	}

	if first := firstWord(p.CoachName); first != "" {
		needle := fold(first)
		for _, c := range ds.Coaches {
			if strings.Contains(fold(c.Name), needle) {
				p.Coach = &CoachProfile{
					Coach:     c,
					Role:      CoachRole(c.Category),
					Sports:    CleanList(c.Disciplines),
					EventList: CleanList(c.Events),
				}
				break
			}
		}
	}

	for _, m := range ds.Medallists {
		if m.Name != name {
			continue
		}
		switch m.MedalType {
		case types.Gold:
			p.Medals.Gold++
		case types.Silver:
			p.Medals.Silver++
		case types.Bronze:
			p.Medals.Bronze++
		}
	}
	return p, true
}

// PrimaryCoach extracts the first coach name from the free-text coach
// column: line breaks act as commas, and the name ends at the first "(" or,
// failing that, the first comma.
func PrimaryCoach(raw string) string {
	text := replaceBreaks(raw, ",")
	if i := strings.Index(text, "("); i >= 0 {
		return strings.TrimSpace(strings.Trim(strings.TrimSpace(text[:i]), ","))
	}
	first, _, _ := strings.Cut(text, ",")
	return strings.TrimSpace(first)
}

func replaceBreaks(s, with string) string {
	s = strings.ReplaceAll(s, "<br>", with)
	return strings.ReplaceAll(s, "<BR>", with)
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
