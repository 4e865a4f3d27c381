package triage

import (
	"regexp"
	"strings"
	"unicode"
)

// Intent is the coarse category of an inbound user message.
type Intent string

const (
	IntentBooking       Intent = "booking"
	IntentSlotSelection Intent = "slot_selection"
	IntentConfirmation  Intent = "confirmation"
	IntentSymptom       Intent = "symptom"
	IntentNone          Intent = "none"
)

// Keyword sets are fixed and heuristic on purpose; this layer must stay
// reproducible, not model-based.
var bookingPhrases = []string{
	"appointment",
	"book",
	"schedule",
	"see doctor",
	"see a doctor",
	"doctor visit",
	"checkup",
	"check-up",
}

var slotPhrases = []string{
	"slot",
	"choose",
	"pick",
	"option",
	"select",
	"number",
}

var symptomKeywords = []string{
	"dizzy", "dizziness", "pain", "ache", "hurt", "hurts", "sore",
	"tired", "fatigue", "weak", "nausea", "nauseous", "vomit",
	"fever", "cough", "headache", "breath", "breathe", "breathing",
	"chest", "heart", "swollen", "numb", "faint", "palpitation",
	"unwell", "sick", "ill",
}

var affirmatives = map[string]bool{
	"yes": true, "y": true, "yeah": true, "yep": true,
	"confirm": true, "ok": true, "okay": true, "sure": true,
	"please do": true, "go ahead": true,
}

var negatives = map[string]bool{
	"no": true, "n": true, "nope": true,
	"not ok": true, "not okay": true, "cancel": true,
}

// intentRules is evaluated in order; the first match wins. Precedence
// matters because the vocabularies overlap: a booking request that
// mentions chest pain must reach the appointment flow, not triage.
var intentRules = []struct {
	intent Intent
	match  func(string) bool
}{
	{IntentBooking, hasBookingPhrase},
	{IntentSlotSelection, hasSlotSelection},
	{IntentConfirmation, isExactConfirmation},
	{IntentSymptom, hasSymptomKeyword},
}

// Classify returns the highest-precedence intent of a user message.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.match(lower) {
			return rule.intent
		}
	}
	return IntentNone
}

func hasBookingPhrase(lower string) bool {
	for _, p := range bookingPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func hasSlotSelection(lower string) bool {
	if !strings.ContainsAny(lower, "0123456789") {
		return false
	}
	for _, p := range slotPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// HasSymptom reports whether the message mentions any tracked symptom
// keyword. Used both for intent routing and for pulling the most recent
// symptom line out of a transcript.
func HasSymptom(message string) bool {
	return hasSymptomKeyword(strings.ToLower(message))
}

func hasSymptomKeyword(lower string) bool {
	for _, k := range symptomKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Answer is the result of confirmation detection.
type Answer int

const (
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
)

// normalize trims whitespace and punctuation and lower-cases, so that
// "Yes!" and " yes. " both normalize to "yes".
func normalize(message string) string {
	cleaned := strings.TrimFunc(message, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return strings.ToLower(cleaned)
}

// Confirmation matches the normalized message against the fixed
// affirmative and negative sets. Exact match after normalization avoids
// false positives from words like "noway".
func Confirmation(message string) Answer {
	norm := normalize(message)
	if affirmatives[norm] {
		return AnswerYes
	}
	if negatives[norm] {
		return AnswerNo
	}
	return AnswerNone
}

func isExactConfirmation(lower string) bool {
	return Confirmation(lower) != AnswerNone
}

// ContainsAffirmative is the relaxed check applied only while an
// appointment confirmation is pending, so that "sure book it" or
// "yes, please book it" still confirm. Everywhere else the exact-match
// rule applies.
func ContainsAffirmative(message string) bool {
	lower := strings.ToLower(message)
	for word := range affirmatives {
		if containsWord(lower, word) {
			return true
		}
	}
	return false
}

// ContainsNegative is the relaxed counterpart for declines while a
// confirmation is pending.
func ContainsNegative(message string) bool {
	lower := strings.ToLower(message)
	for word := range negatives {
		if containsWord(lower, word) {
			return true
		}
	}
	return false
}

func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordRune(rune(lower[start-1]))
		afterOK := end == len(lower) || !isWordRune(rune(lower[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

var slotNumberRe = regexp.MustCompile(`slot\s*#?\s*(\d+)`)
var anyNumberRe = regexp.MustCompile(`\d+`)

// ExtractSlotNumber pulls the referenced slot ordinal out of a message.
// A number immediately following the word "slot" wins; otherwise the
// first digit sequence anywhere in the message is used.
func ExtractSlotNumber(message string) (int, bool) {
	lower := strings.ToLower(message)
	if m := slotNumberRe.FindStringSubmatch(lower); m != nil {
		return atoiSafe(m[1])
	}
	if m := anyNumberRe.FindString(lower); m != "" {
		return atoiSafe(m)
	}
	return 0, false
}

func atoiSafe(s string) (int, bool) {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
		if n > 1_000_000 {
			return 0, false
		}
	}
	return n, true
}
