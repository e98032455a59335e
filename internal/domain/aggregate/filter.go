// Package aggregate computes the derived tables behind every dashboard view.
//
// All functions are pure: they read a *model.Dataset and a Filter and never
// mutate either. Empty input never produces an error; each result carries a
// NoData flag instead.
package aggregate

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/okian/podium/internal/domain/types"
)

// Filter is a conjunctive selection across independent dimensions. An empty
// dimension does not restrict anything.
type Filter struct {
	Countries []string
	Sports    []string
	Genders   []string
	Medals    []types.MedalType
	Venues    []string
}

// Empty reports whether no dimension is restricted.
func (f Filter) Empty() bool {
	return len(f.Countries) == 0 && len(f.Sports) == 0 && len(f.Genders) == 0 &&
		len(f.Medals) == 0 && len(f.Venues) == 0
}

// MedalTypes returns the selected medal types, or all three when none are
// selected. The result is always in Gold, Silver, Bronze order.
func (f Filter) MedalTypes() []types.MedalType {
	if len(f.Medals) == 0 {
		return types.MedalTypes()
	}
	out := make([]types.MedalType, 0, 3)
	for _, m := range types.MedalTypes() {
		if containsMedal(f.Medals, m) {
			out = append(out, m)
		}
	}
	return out
}

func containsMedal(set []types.MedalType, m types.MedalType) bool {
	for _, s := range set {
		if s == m {
			return true
		}
	}
	return false
}

// in reports exact membership. An empty set admits everything.
func in(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any needle is a substring of field. This is
// the matching rule for multi-valued text columns such as "['Golf']", and
// it deliberately matches partial words too. No needles admits everything.
func ContainsAny(field string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	for _, n := range needles {
		if strings.Contains(field, n) {
			return true
		}
	}
	return false
}

// ContainsAnyFold is ContainsAny ignoring case.
func ContainsAnyFold(field string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	folded := fold(field)
	for _, n := range needles {
		if strings.Contains(folded, fold(n)) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// CleanList strips the bracket and quote decoration of a list column:
// "['Swimming', 'Diving']" becomes "Swimming, Diving".
func CleanList(raw string) string {
	s := strings.Trim(raw, "[]'\"}")
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, `"`, "")
}

// SplitList splits a list column into its trimmed, undecorated items.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.Trim(part, "[]'\" "); item != "" {
			out = append(out, item)
		}
	}
	return out
}
