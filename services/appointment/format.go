package appointment

import (
	"fmt"
	"strings"
	"time"

	"carelink/models"
)

// FormatSlots renders a slot listing grouped by specialty. Numbering is
// 1-based and continuous across groups; the ordinals are local to this
// display and must be resolved against the same list they were shown
// from.
func FormatSlots(slots []models.Slot) string {
	if len(slots) == 0 {
		return "No available appointments found for the requested time period."
	}

	// Group while preserving first-seen specialty order.
	var order []string
	groups := make(map[string][]models.Slot)
	for _, slot := range slots {
		if _, ok := groups[slot.Specialty]; !ok {
			order = append(order, slot.Specialty)
		}
		groups[slot.Specialty] = append(groups[slot.Specialty], slot)
	}

	var b strings.Builder
	b.WriteString("🏥 Available Appointment Slots:\n\n")

	num := 1
	for _, specialty := range order {
		group := groups[specialty]
		fmt.Fprintf(&b, "📋 %s\n", specialty)
		fmt.Fprintf(&b, "   %s\n\n", group[0].Description)
		for _, slot := range group {
			fmt.Fprintf(&b, "   %d. %s, %s at %s\n", num, slot.Day, slot.Date, slot.Time)
			fmt.Fprintf(&b, "      👨‍⚕️ %s\n\n", slot.Doctor)
			num++
		}
		b.WriteString("\n")
	}

	b.WriteString("💡 Choose a slot number based on your health concern. For example:\n")
	b.WriteString("   • General Medicine: Annual checkups, routine care\n")
	b.WriteString("   • Cardiology: Heart conditions, chest pain, blood pressure\n")
	b.WriteString("   • Internal Medicine: Complex conditions, chronic diseases\n")
	b.WriteString("   • Geriatrics: Elderly care, age-related issues\n")
	b.WriteString("   • Neurology: Headaches, dizziness, memory problems\n")

	return b.String()
}

// ConfirmQuestion renders the mandatory yes/no prompt for a tentatively
// chosen slot. No slot is ever booked on first mention.
func ConfirmQuestion(ordinal int, slot models.Slot, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You selected slot %d: %s, %s at %s with %s (%s).\n",
		ordinal, slot.Day, slot.Date, slot.Time, slot.Doctor, slot.Specialty)
	fmt.Fprintf(&b, "📋 Reason: %s\n\n", reason)
	b.WriteString("Would you like to book this appointment? (yes/no)")
	return b.String()
}

// ConfirmationMessage renders the final booking confirmation shown to
// the user. Calendar and email details are included only when the
// notification backend delivered them.
func ConfirmationMessage(result models.BookingResult) string {
	booking := result.Booking

	weekday := booking.Date
	if t, err := time.Parse("2006-01-02", booking.Date); err == nil {
		weekday = t.Weekday().String()
	}

	var b strings.Builder
	b.WriteString("✅ Appointment Confirmed!\n\n")
	fmt.Fprintf(&b, "📅 Date: %s (%s)\n", booking.Date, weekday)
	fmt.Fprintf(&b, "⏰ Time: %s\n", booking.Time)
	fmt.Fprintf(&b, "👨‍⚕️ Doctor: %s (%s)\n", booking.Doctor, booking.Specialty)
	b.WriteString("🏥 Location: Main Medical Center, 123 Healthcare Ave\n")
	fmt.Fprintf(&b, "📋 Reason: %s\n", booking.Reason)
	fmt.Fprintf(&b, "🆔 Booking ID: %s\n\n", booking.BookingID)

	if result.CalendarEvent != nil && result.EmailSent {
		b.WriteString("Your appointment has been added to your Google Calendar, and I have sent you an email with the appointment details.\n")
		b.WriteString("You'll receive a reminder 24 hours before your appointment.\n\n")
	}
	b.WriteString("Please arrive 15 minutes early to complete any necessary paperwork. ")
	b.WriteString("If you need to reschedule or cancel, please call us at least 24 hours in advance.")
	return b.String()
}
