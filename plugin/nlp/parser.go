// Package nlp extracts a structured scheduling record from a single informal
// Vietnamese sentence: event label, start time, location and reminder lead
// time. The pipeline is a cascade of locale-specific pattern recognizers with
// an injected general-inference fallback; it is pure, deterministic for a
// fixed reference instant, and safe for concurrent use.
package nlp

import (
	"context"
	"time"
)

// ParsedEvent is the record extracted from one sentence.
type ParsedEvent struct {
	// Event is the label, with original casing preserved.
	Event string `json:"event"`
	// StartTime is always a concrete instant; it defaults to the reference
	// instant when no rule yields a date.
	StartTime time.Time `json:"start_time"`
	// EndTime is reserved for future use and currently always nil.
	EndTime *time.Time `json:"end_time"`
	// Location is "" when no cascade stage matched.
	Location string `json:"location"`
	// ReminderMinutes is the lead time of an explicit reminder phrase.
	ReminderMinutes int `json:"reminder_minutes"`
}

// Parser runs the extraction pipeline. The zero-value Parser is not usable;
// construct one with NewParser.
type Parser struct {
	inferrer Inferrer
}

// NewParser creates a parser with the given inference fallback. A nil
// inferrer falls back to the rule-based one.
func NewParser(inferrer Inferrer) *Parser {
	if inferrer == nil {
		inferrer = NewRuleInferrer()
	}
	return &Parser{inferrer: inferrer}
}

// Parse extracts a scheduling record from text, anchoring every relative or
// fallback computation to now. The reference instant is never read from the
// system clock. Parse always returns a complete record; degraded extraction
// shows up as an empty location or a label equal to the whole input, never as
// an error.
func (p *Parser) Parse(ctx context.Context, text string, now time.Time) *ParsedEvent {
	norm := Normalize(text)

	reminder := extractReminder(norm)
	location := resolveLocation(text)

	start := p.resolveDate(ctx, norm, now)
	if h, m, ok := extractClock(norm); ok {
		start = time.Date(start.Year(), start.Month(), start.Day(), h, m, 0, 0, start.Location())
	} else if h, m, ok := partOfDay(norm); ok {
		start = time.Date(start.Year(), start.Month(), start.Day(), h, m, 0, 0, start.Location())
	}

	return &ParsedEvent{
		Event:           extractEventName(text),
		StartTime:       start,
		Location:        location,
		ReminderMinutes: reminder,
	}
}
