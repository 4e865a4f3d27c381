package agent

import "fmt"

// Greeting opens every new conversation and answers a blank message.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s, how are you feeling today?", name)
}

// FollowupNotice is appended to mild-severity replies right after the
// check-in timer is armed.
const FollowupNotice = "I'll check in with you in a little while to see how you're doing."

const systemPromptTemplate = `You are a warm, attentive health assistant for %s, an elderly patient. Today's date is %s.

Your job:
- Listen to how the patient is feeling and respond with care and empathy.
- Use the lookup_health_data tool to answer questions about their recorded meals, vitals, or medical records. Always report exactly what the tool returns; never invent health data.
- If the patient wants to see or book an appointment, use the list_appointment_slots and select_appointment_slot tools. Never claim an appointment is booked; the booking system confirms separately.
- Keep replies short, plain, and kind. One or two paragraphs at most.
- If symptoms sound concerning, say so honestly, but do not diagnose.

Recorded health data for context, when relevant, appears in a "Daily record" block. Treat it as ground truth.`

// SystemPrompt renders the model's standing instructions.
func SystemPrompt(name, today string) string {
	return fmt.Sprintf(systemPromptTemplate, name, today)
}

// FactsBlock renders the resolved-date health record injected into the
// model context for symptom and data questions. Empty categories are
// skipped; a fully empty day yields "".
func FactsBlock(date, food, vitals, medical string) string {
	if food == "" && vitals == "" && medical == "" {
		return ""
	}
	block := fmt.Sprintf("Daily record for %s:\n", date)
	if food != "" {
		block += fmt.Sprintf("- Food: %s\n", food)
	}
	if vitals != "" {
		block += fmt.Sprintf("- Vitals: %s\n", vitals)
	}
	if medical != "" {
		block += fmt.Sprintf("- Medical record: %s\n", medical)
	}
	return block
}
