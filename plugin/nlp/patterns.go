package nlp

import "regexp"

// RE2 word boundaries (\b) only understand ASCII word characters, so any
// pattern anchored on a Vietnamese token needs explicit letter/digit guards.
const (
	wordStart = `(?:^|[^\p{L}\d])`
	wordEnd   = `(?:[^\p{L}\d]|$)`
)

// Pattern tables for the extraction cascades. Compiled once, never mutated.
var (
	// Normalizer rewrites. The surrounding guard characters are captured so
	// the replacement can put them back.
	hourWordPattern   = regexp.MustCompile(`(^|[^\p{L}\d])(?:giwof|giwo|gio)($|[^\p{L}\d])`)
	hourMinuteSpacing = regexp.MustCompile(`(\d+)\s*h\s*(\d+)`)
	hourSuffixSpacing = regexp.MustCompile(`(\d+)\s*h($|[^\p{L}\d])`)

	// Explicit clock: "7h", "7h30", "11 giờ", "8:30".
	clockPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:h|giờ|:)\s*(\d{1,2})?`)

	// Relative offsets, only consulted when a "from now" marker is present.
	minuteOffsetPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:phút|p|min)`)
	hourOffsetPattern   = regexp.MustCompile(`(?i)(\d+)\s*(?:giờ|h)` + wordEnd)

	// "nhắc ... N phút" reminder lead time, count capped at three digits.
	reminderPattern = regexp.MustCompile(`(?i)nhắc[^0-9]*(\d{1,3})\s*(?:p|phút|min)`)

	// Absolute day/month: "ngày 12/12", "25-12".
	dayMonthPattern = regexp.MustCompile(`(?:ngày)?\s*(\d{1,2})[/-](\d{1,2})`)

	// Room keyword followed by an optional letter and 2-4 digits. One-digit
	// tokens ("phòng A1") are left for the generic place stage.
	roomPattern = regexp.MustCompile(`(?i)` + wordStart + `(?:phòng|p\.?)\s+([A-Za-z]?\d{2,4})` + wordEnd)

	// Numbered street address after a location preposition.
	addressPattern = regexp.MustCompile(`(?i)(?:tại|ở|đến|qua|tới)\s+(\d+\s+[\p{L}\d\s\.]+)`)

	// Generic place phrase after a location preposition. The capture stops at
	// punctuation by construction; temporal stopwords are cut afterwards.
	placePattern = regexp.MustCompile(`(?i)(?:tại|ở|đến|tới)\s+([\p{L}\d][\p{L}\d\s\.]*)`)

	// Temporal stopwords that terminate a captured location span.
	addressStopPattern = regexp.MustCompile(`(?i)` + wordStart + `(lúc|vào|sáng|chiều|tối|mai|nay|ngày)` + wordEnd)
	placeStopPattern   = regexp.MustCompile(`(?i)` + wordStart + `(lúc|vào|trước|sau|sáng|trưa|chiều|tối|mai|nay|hôm nay|tuần|ngày|đêm)` + wordEnd)

	// First temporal/locational preposition; everything before it is the label.
	eventCutPattern = regexp.MustCompile(`(?i)` + wordStart + `(lúc|vào|tại|ở)` + wordEnd)

	// Command-verb openers stripped from the front of a label, at most once.
	fillerPattern = regexp.MustCompile(`(?i)^(?:nhắc tôi|hãy|ghi chú|đặt|tạo)\s*`)

	// Standalone "cn" (chủ nhật) needs whole-word matching.
	sundayShortPattern = regexp.MustCompile(`(?i)` + wordStart + `cn` + wordEnd)
)

// provincePattern matches known province/city names as whole words.
var provincePattern = regexp.MustCompile(`(?i)` + wordStart +
	`(bình thuận|đồng nai|vũng tàu|hà nội|hồ chí minh|quảng nam|đà nẵng|hải phòng|cần thơ|an giang|long an|bến tre|bình dương|bình phước|kiên giang|đắk lắk|daklak|lâm đồng|đà lạt)` +
	wordEnd)

// weekdaySynonyms maps weekday names to Monday-based indexes, evaluated in
// order. Saturday shortcuts ("cuối tuần") and Sunday are handled before this
// table is consulted.
var weekdaySynonyms = []struct {
	name string
	day  int
}{
	{"thứ 2", 0},
	{"thứ hai", 0},
	{"thứ 3", 1},
	{"thứ ba", 1},
	{"thứ 4", 2},
	{"thứ tư", 2},
	{"thứ 5", 3},
	{"thứ năm", 3},
	{"thứ 6", 4},
	{"thứ sáu", 4},
	{"thứ 7", 5},
	{"thứ bảy", 5},
}

// partOfDayBuckets maps coarse time-of-day keywords to fixed clock hours,
// evaluated in order.
var partOfDayBuckets = []struct {
	keyword string
	hour    int
}{
	{"sáng", 9},
	{"trưa", 12},
	{"chiều", 15},
	{"tối", 19},
}
