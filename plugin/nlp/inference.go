package nlp

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// Inferrer is the general-purpose natural-language date/time inference
// capability consulted when no structured rule matches. Implementations must
// anchor all computation to ref, prefer future dates, and report "no match"
// with an error instead of guessing. The parser treats every error as a
// non-match.
type Inferrer interface {
	InferTime(ctx context.Context, text string, ref time.Time) (time.Time, error)
}

// relDayOffsets maps Vietnamese relative-day words to day offsets, longest
// spelling first so "ngày mai" wins over "mai".
var relDayOffsets = []struct {
	word   string
	offset int
}{
	{"ngày kia", 2},
	{"ngày mốt", 2},
	{"ngày mai", 1},
	{"hôm nay", 0},
	{"hôm qua", -1},
	{"mai", 1},
	{"nay", 0},
}

var relDayPatterns = compileRelDayPatterns()

func compileRelDayPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(relDayOffsets))
	for i, rd := range relDayOffsets {
		patterns[i] = regexp.MustCompile(`(?i)` + wordStart + regexp.QuoteMeta(rd.word) + wordEnd)
	}
	return patterns
}

// RuleInferrer is the default Inferrer: a small rule table for relative-day
// words ("hôm nay", "mai", "ngày kia") that the structured cascade does not
// cover. It needs no network and keeps the pipeline fully local.
type RuleInferrer struct{}

// NewRuleInferrer creates the rule-based inference fallback.
func NewRuleInferrer() *RuleInferrer {
	return &RuleInferrer{}
}

// InferTime resolves a relative-day word against the reference instant.
func (r *RuleInferrer) InferTime(_ context.Context, text string, ref time.Time) (time.Time, error) {
	for i, rd := range relDayOffsets {
		if relDayPatterns[i].MatchString(text) {
			return ref.AddDate(0, 0, rd.offset), nil
		}
	}
	return time.Time{}, errors.New("no temporal expression recognized")
}

var _ Inferrer = (*RuleInferrer)(nil)
