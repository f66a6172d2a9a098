package nlp

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// dateStrategy is one stage of the date cascade. Stages run in order and the
// first match wins; the inference fallback is appended by the parser.
type dateStrategy struct {
	name    string
	resolve func(norm string, now time.Time) (time.Time, bool)
}

var dateCascade = []dateStrategy{
	{name: "relative-offset", resolve: resolveRelativeOffset},
	{name: "day-month", resolve: resolveDayMonth},
	{name: "weekday", resolve: resolveWeekday},
}

// resolveDate runs the date cascade, then the general-inference fallback, and
// finally defaults to the reference instant itself.
func (p *Parser) resolveDate(ctx context.Context, norm string, now time.Time) time.Time {
	for _, s := range dateCascade {
		if t, ok := s.resolve(norm, now); ok {
			return t
		}
	}
	if t, err := p.inferrer.InferTime(ctx, norm, now); err == nil && !t.IsZero() {
		return t
	}
	return now
}

// resolveRelativeOffset handles "N phút nữa" / "N giờ nữa". It only fires when
// the "nữa" marker is present, and a minute count takes precedence over an
// hour count.
func resolveRelativeOffset(norm string, now time.Time) (time.Time, bool) {
	if !strings.Contains(norm, "nữa") {
		return time.Time{}, false
	}
	if m := minuteOffsetPattern.FindStringSubmatch(norm); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(n) * time.Minute), true
	}
	if m := hourOffsetPattern.FindStringSubmatch(norm); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(n) * time.Hour), true
	}
	return time.Time{}, false
}

// resolveDayMonth handles "ngày D/M" in the reference year. A date already in
// the past rolls forward to the following year; an impossible calendar date is
// no match.
func resolveDayMonth(norm string, now time.Time) (time.Time, bool) {
	m := dayMonthPattern.FindStringSubmatch(norm)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	dt, ok := makeDate(now.Year(), month, day, now.Location())
	if !ok {
		return time.Time{}, false
	}
	if dt.Before(now) {
		dt, ok = makeDate(now.Year()+1, month, day, now.Location())
		if !ok {
			return time.Time{}, false
		}
	}
	return dt, true
}

// makeDate builds a midnight date and rejects impossible day/month
// combinations, which time.Date would otherwise silently normalize.
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// resolveWeekday maps weekday-name synonyms to the reference week's date.
// "cuối tuần" means Saturday and "chủ nhật"/"cn" Sunday. A "tới"/"tuần sau"
// qualifier pushes an already-passed weekday to next week, and a same-or-next
// day target a full week out: "thứ 3 tới" said on a Monday means eight days
// ahead, not tomorrow.
func resolveWeekday(norm string, now time.Time) (time.Time, bool) {
	// Monday-based weekday of the reference instant.
	ref := (int(now.Weekday()) + 6) % 7

	if strings.Contains(norm, "cuối tuần") {
		return now.AddDate(0, 0, (5-ref+7)%7), true
	}
	if strings.Contains(norm, "chủ nhật") || sundayShortPattern.MatchString(norm) {
		return now.AddDate(0, 0, (6-ref+7)%7), true
	}

	for _, wd := range weekdaySynonyms {
		if !strings.Contains(norm, wd.name) {
			continue
		}
		diff := (wd.day - ref + 7) % 7
		if strings.Contains(norm, "tới") || strings.Contains(norm, "tuần sau") {
			if diff == 0 {
				diff = 7
			}
			if diff < 2 {
				diff += 7
			}
		}
		return now.AddDate(0, 0, diff), true
	}
	return time.Time{}, false
}
