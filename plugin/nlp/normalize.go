package nlp

import "strings"

// Normalize canonicalizes raw text before pattern matching: lower-cases,
// trims, folds colloquial spellings of "giờ" to the canonical one and removes
// spacing around the hour/minute separator ("7 h 30" -> "7h30").
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))

	s = hourWordPattern.ReplaceAllString(s, "${1}giờ${2}")

	s = hourMinuteSpacing.ReplaceAllString(s, "${1}h${2}")
	s = hourSuffixSpacing.ReplaceAllString(s, "${1}h${2}")

	return s
}
