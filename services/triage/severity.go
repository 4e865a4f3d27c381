package triage

import "strings"

// Severity classifies an assistant-generated reply, not the user's
// message.
type Severity string

const (
	SeveritySerious Severity = "serious"
	SeverityMild    Severity = "mild"
	SeverityNone    Severity = "none"
)

// The serious set is checked first and short-circuits: a reply that
// mentions both "stable" and "emergency room" must never be downgraded
// to mild.
var seriousReplyKeywords = []string{
	"emergency",
	"911",
	"emergency room",
	"hospital",
	"urgent",
	"severe",
	"critical",
	"life-threatening",
	"call your doctor immediately",
	"seek immediate",
	"chest pain",
	"difficulty breathing",
	"can't breathe",
	"cannot breathe",
	"deteriorating",
}

var mildReplyKeywords = []string{
	"mild",
	"minor",
	"stable",
	"normal",
	"rest",
	"hydrate",
	"drink water",
	"monitor",
	"improving",
	"light activity",
	"nothing serious",
	"should pass",
}

// severityRules is ordered: serious wins ties by construction.
var severityRules = []struct {
	severity Severity
	keywords []string
}{
	{SeveritySerious, seriousReplyKeywords},
	{SeverityMild, mildReplyKeywords},
}

// ClassifyReply scans an assistant reply against the fixed keyword
// sets, serious first.
func ClassifyReply(reply string) Severity {
	lower := strings.ToLower(reply)
	for _, rule := range severityRules {
		for _, k := range rule.keywords {
			if strings.Contains(lower, k) {
				return rule.severity
			}
		}
	}
	return SeverityNone
}
