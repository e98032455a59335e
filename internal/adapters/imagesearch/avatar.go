package imagesearch

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	avatarBase   = "https://ui-avatars.com/api/"
	maleColor    = "3498db"
	defaultColor = "e74c3c"
)

// Avatar returns a generated placeholder portrait for name. Male profiles
// are drawn on blue, everyone else on red.
func Avatar(name, gender string) string {
	bg := defaultColor
	if gender == "Male" {
		bg = maleColor
	}
	return avatarBase + "?name=" + url.PathEscape(Initials(name)) +
		"&size=200&background=" + bg + "&color=fff&bold=true"
}

// Initials joins the upper-cased first letters of the first two words of
// name with "+". A name without words yields "A".
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "A"
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	letters := make([]string, 0, len(parts))
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(p)
		letters = append(letters, string(unicode.ToUpper(r)))
	}
	return strings.Join(letters, "+")
}
