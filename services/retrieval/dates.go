package retrieval

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var relativePhrases = []struct {
	phrase string
	days   int
}{
	// Longer phrases first so "day before yesterday" is not swallowed
	// by "yesterday".
	{"day before yesterday", -2},
	{"yesterday", -1},
	{"last night", -1},
	{"this morning", 0},
	{"this afternoon", 0},
	{"this evening", 0},
	{"tonight", 0},
	{"today", 0},
	{"tomorrow", 1},
	{"last week", -7},
	{"a week ago", -7},
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var (
	isoDateRe    = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	daysAgoRe    = regexp.MustCompile(`\b(\d+)\s+days?\s+ago\b`)
	monthDayRe   = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?\b`)
	dateKeywords = []string{"date", "day", "week", "month", "ago", "on "}
)

// ResolveDate extracts a date from free text relative to now, using a
// layered strategy: embedded date-like spans first (explicit dates,
// relative phrases, weekday and month names), then a whole-string parse
// if the text still looks date-bearing, and finally today.
func ResolveDate(query string, now time.Time) string {
	lower := strings.ToLower(query)

	if d, ok := findEmbeddedDate(lower, now); ok {
		return d
	}
	if strings.ContainsAny(lower, "0123456789") || hasDateKeyword(lower) {
		if d, ok := parseWholeString(strings.TrimSpace(lower), now); ok {
			return d
		}
	}
	return now.Format(dateLayout)
}

func findEmbeddedDate(lower string, now time.Time) (string, bool) {
	if m := isoDateRe.FindString(lower); m != "" {
		if t, err := time.Parse(dateLayout, m); err == nil {
			return t.Format(dateLayout), true
		}
	}
	if m := slashDateRe.FindStringSubmatch(lower); m != nil {
		if t, err := time.Parse("1/2/2006", m[0]); err == nil {
			return t.Format(dateLayout), true
		}
	}
	if m := daysAgoRe.FindStringSubmatch(lower); m != nil {
		if n, ok := atoi(m[1]); ok {
			return now.AddDate(0, 0, -n).Format(dateLayout), true
		}
	}
	for _, rel := range relativePhrases {
		if strings.Contains(lower, rel.phrase) {
			return now.AddDate(0, 0, rel.days).Format(dateLayout), true
		}
	}
	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		month := months[m[1]]
		day, _ := atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = atoi(m[3])
		}
		t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		return t.Format(dateLayout), true
	}
	for name, wd := range weekdays {
		if containsWord(lower, name) {
			return lastWeekday(now, wd).Format(dateLayout), true
		}
	}
	return "", false
}

// lastWeekday returns the most recent occurrence of wd, counting today.
func lastWeekday(now time.Time, wd time.Weekday) time.Time {
	diff := int(now.Weekday() - wd)
	if diff < 0 {
		diff += 7
	}
	return now.AddDate(0, 0, -diff)
}

// parseWholeString tries the whole text against known layouts. The
// caller has lower-cased the text and time.Parse is case-sensitive
// about month names, so each word is re-title-cased first.
func parseWholeString(s string, now time.Time) (string, bool) {
	s = titleWords(s)
	layouts := []string{
		dateLayout,
		"1/2/2006",
		"January 2, 2006",
		"January 2 2006",
		"2 January 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), true
		}
	}
	// Month-day without a year parses into year 0; pin to the current year.
	for _, layout := range []string{"January 2", "Jan 2", "2 January"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

func hasDateKeyword(lower string) bool {
	for _, k := range dateKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func containsWord(lower, word string) bool {
	idx := strings.Index(lower, word)
	for idx >= 0 {
		end := idx + len(word)
		beforeOK := idx == 0 || !isLetter(lower[idx-1])
		afterOK := end == len(lower) || !isLetter(lower[end])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(lower[idx+1:], word)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		if n > 100000 {
			return 0, false
		}
	}
	return n, len(s) > 0
}
