package nlp

import (
	"strconv"
	"strings"
)

// extractClock finds an explicit "H h/giờ/: M?" clock in the normalized text.
func extractClock(norm string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	return hour, minute, true
}

// partOfDay maps a coarse time-of-day keyword to its bucket hour.
func partOfDay(norm string) (hour, minute int, ok bool) {
	for _, b := range partOfDayBuckets {
		if strings.Contains(norm, b.keyword) {
			return b.hour, 0, true
		}
	}
	return 0, 0, false
}
