package nlp

import "strings"

// extractEventName derives the event label from the original text: everything
// before the first temporal/locational preposition, with surrounding
// punctuation trimmed and a leading command-verb opener stripped once.
// Original casing is preserved.
func extractEventName(text string) string {
	name := text
	if idx := eventCutPattern.FindStringSubmatchIndex(text); idx != nil {
		// idx[2] is the start of the keyword itself, not the guard.
		name = text[:idx[2]]
	}

	name = strings.Trim(name, " ,.")
	name = fillerPattern.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}
