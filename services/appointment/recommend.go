package appointment

import "strings"

var specialtyKeywords = []struct {
	specialty string
	keywords  []string
}{
	{"Cardiology", []string{"chest", "heart", "blood pressure", "arrhythmia", "palpitation"}},
	{"Neurology", []string{"headache", "dizzy", "dizziness", "memory", "nerve", "stroke", "seizure"}},
	{"Geriatrics", []string{"elderly", "age", "mobility", "balance", "fall"}},
	{"Internal Medicine", []string{"chronic", "diabetes", "complex", "multiple"}},
}

// RecommendSpecialty maps described symptoms to the specialty most
// likely to handle them, defaulting to General Medicine.
func RecommendSpecialty(symptoms string) string {
	lower := strings.ToLower(symptoms)
	for _, entry := range specialtyKeywords {
		for _, k := range entry.keywords {
			if strings.Contains(lower, k) {
				return entry.specialty
			}
		}
	}
	return "General Medicine"
}

// knownSpecialties is used to detect a specialty the user named
// explicitly.
var knownSpecialties = []string{
	"General Medicine",
	"Cardiology",
	"Internal Medicine",
	"Geriatrics",
	"Neurology",
}

// NamedSpecialty returns the specialty explicitly mentioned in the
// message, or "".
func NamedSpecialty(message string) string {
	lower := strings.ToLower(message)
	for _, sp := range knownSpecialties {
		if strings.Contains(lower, strings.ToLower(sp)) {
			return sp
		}
	}
	return ""
}
