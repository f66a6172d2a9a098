package nlp

import "strconv"

// extractReminder returns the reminder lead time in minutes from a
// "nhắc ... N phút" phrase, or 0 when no such phrase exists.
func extractReminder(norm string) int {
	m := reminderPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
