package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// locationStrategy is one stage of the location cascade.
type locationStrategy struct {
	name    string
	resolve func(text string) (string, bool)
}

// locationCascade is ordered most specific first so a generic "tại <place>"
// phrase never pre-empts a room or street-address match.
var locationCascade = []locationStrategy{
	{name: "room", resolve: resolveRoom},
	{name: "province", resolve: resolveProvince},
	{name: "address", resolve: resolveAddress},
	{name: "place", resolve: resolvePlace},
}

// resolveLocation runs the cascade over the original text and returns the
// first match, or "" when no stage matches.
func resolveLocation(text string) string {
	for _, s := range locationCascade {
		if loc, ok := s.resolve(text); ok {
			return loc
		}
	}
	return ""
}

// resolveRoom matches a numbered room token ("phòng B203", "p. 302").
func resolveRoom(text string) (string, bool) {
	m := roomPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return "Phòng " + strings.ToUpper(m[1]), true
}

// resolveProvince matches a known province/city name anywhere in the text.
func resolveProvince(text string) (string, bool) {
	m := provincePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return titleWords(m[1]), true
}

// resolveAddress matches "tại/ở/đến/qua/tới <number> <street>" and truncates
// the captured span at the first trailing temporal keyword.
func resolveAddress(text string) (string, bool) {
	m := addressPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	addr := cutAtStopword(m[1], addressStopPattern)
	if addr == "" {
		return "", false
	}
	return titleWords(addr), true
}

// resolvePlace matches a generic place phrase after a location preposition.
// Phrases shorter than two words are rejected to suppress false positives on
// short prepositional fragments.
func resolvePlace(text string) (string, bool) {
	m := placePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	place := cutAtStopword(m[1], placeStopPattern)
	if len(strings.Fields(place)) < 2 {
		return "", false
	}
	return titleWords(place), true
}

// cutAtStopword truncates s at the first stopword match and trims the result.
func cutAtStopword(s string, stop *regexp.Regexp) string {
	if idx := stop.FindStringSubmatchIndex(s); idx != nil {
		s = s[:idx[2]]
	}
	return strings.Trim(s, " .,")
}

// titleWords collapses whitespace and capitalizes each word the Vietnamese
// way. A caser is built per call because cases.Caser is not safe for
// concurrent use.
func titleWords(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Title(language.Vietnamese).String(s)
}
