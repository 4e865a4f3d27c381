package retrieval

import (
	"testing"
	"time"
)

// Fixed reference point: Monday 2025-07-28.
var refNow = time.Date(2025, 7, 28, 10, 0, 0, 0, time.UTC)

func TestResolveDateRelativePhrases(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"what did I eat today?", "2025-07-28"},
		{"what did I eat yesterday?", "2025-07-27"},
		{"how was I the day before yesterday?", "2025-07-26"},
		{"my vitals from last week", "2025-07-21"},
		{"what did I eat 3 days ago", "2025-07-25"},
		{"did I sleep well last night", "2025-07-27"},
	}
	for _, c := range cases {
		if got := ResolveDate(c.query, refNow); got != c.want {
			t.Fatalf("ResolveDate(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}

func TestResolveDateExplicitDates(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"show me 2025-07-15 please", "2025-07-15"},
		{"what about 7/20/2025", "2025-07-20"},
		{"my meals on july 16th", "2025-07-16"},
		{"records from July 16, 2025", "2025-07-16"},
	}
	for _, c := range cases {
		if got := ResolveDate(c.query, refNow); got != c.want {
			t.Fatalf("ResolveDate(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}

func TestResolveDateWholeStringMonthNames(t *testing.T) {
	// Day-first phrasings never match the embedded month-day pattern
	// and fall through to the whole-string parse, which must survive
	// the lower-casing of the query.
	cases := []struct {
		query string
		want  string
	}{
		{"5 january", "2025-01-05"},
		{"16 july 2025", "2025-07-16"},
		{"jul 16, 2025", "2025-07-16"},
	}
	for _, c := range cases {
		if got := ResolveDate(c.query, refNow); got != c.want {
			t.Fatalf("ResolveDate(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}

func TestResolveDateWeekdayCountsToday(t *testing.T) {
	// refNow is a Monday, so "monday" resolves to refNow itself and
	// "friday" to the previous Friday.
	if got := ResolveDate("how were my vitals on monday", refNow); got != "2025-07-28" {
		t.Fatalf("monday = %q, want 2025-07-28", got)
	}
	if got := ResolveDate("what did I eat on friday", refNow); got != "2025-07-25" {
		t.Fatalf("friday = %q, want 2025-07-25", got)
	}
}

func TestResolveDateDefaultsToToday(t *testing.T) {
	if got := ResolveDate("I feel a bit off", refNow); got != "2025-07-28" {
		t.Fatalf("default = %q, want 2025-07-28", got)
	}
}

func TestResolveDateLongerPhraseWins(t *testing.T) {
	// "day before yesterday" must not be swallowed by "yesterday".
	if got := ResolveDate("the day before yesterday", refNow); got != "2025-07-26" {
		t.Fatalf("got %q, want 2025-07-26", got)
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"what did I eat yesterday", "food"},
		{"how was my blood pressure", "vitals"},
		{"what medication am I on", "medical_record"},
		{"how are you", ""},
	}
	for _, c := range cases {
		if got := InferCategory(c.query); got != c.want {
			t.Fatalf("InferCategory(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}
