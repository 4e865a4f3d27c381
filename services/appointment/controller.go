package appointment

import (
	"context"
	"fmt"
	"strings"

	"carelink/models"
	"carelink/services/retrieval"
	"carelink/services/session"
	"carelink/services/triage"
	"carelink/utils"

	"go.uber.org/zap"
)

// FlowController drives the explicit appointment workflow: listing,
// ordinal selection, mandatory yes/no confirmation, and booking. Every
// reply it produces is deterministic; the language model never books a
// slot directly.
type FlowController struct {
	Schedule  Backend
	Retriever *retrieval.Retriever
	Log       *zap.Logger
}

func NewFlowController(backend Backend, retriever *retrieval.Retriever) *FlowController {
	return &FlowController{
		Schedule:  backend,
		Retriever: retriever,
		Log:       utils.GetLogger().Named("appointment"),
	}
}

// Handle routes one user message through the appointment workflow.
// handled is false when the message is not appointment-related and the
// caller should continue with its normal pipeline.
func (c *FlowController) Handle(ctx context.Context, sess *session.Session, message string) (reply string, handled bool) {
	if sess.PendingAppointment() != nil {
		if reply, ok := c.resolveConfirmation(ctx, sess, message); ok {
			return reply, true
		}
	}

	switch triage.Classify(message) {
	case triage.IntentSlotSelection:
		return c.selectSlot(ctx, sess, message), true
	case triage.IntentBooking:
		if reply, ok := c.proposeByDoctor(sess, message); ok {
			return reply, true
		}
		return c.ShowSlots(sess, message), true
	}
	return "", false
}

// resolveConfirmation consumes a yes/no while a tentative slot is
// pending. The relaxed word-level checks apply only here, so that
// "sure, book it" confirms but a stray "ok" elsewhere never books
// anything.
func (c *FlowController) resolveConfirmation(ctx context.Context, sess *session.Session, message string) (string, bool) {
	pending := sess.PendingAppointment()
	if pending == nil {
		return "", false
	}

	if triage.ContainsNegative(message) {
		sess.ClearPendingAppointment()
		return "No problem. The appointment was not booked. Would you like to see the available slots again?", true
	}
	if !triage.ContainsAffirmative(message) {
		return "", false
	}

	// Re-resolve the ordinal against the listing the user was shown.
	// The identity baked into the pending record is authoritative; the
	// ordinal check only guards against a listing swap in between.
	shown := sess.ShownSlots()
	slot := pending.Slot
	if pending.SlotNumber >= 1 && pending.SlotNumber <= len(shown) {
		slot = shown[pending.SlotNumber-1]
	}

	result := c.Schedule.ConfirmBooking(ctx, slot, utils.DisplayName(sess.UserID), pending.Reason, sess.UserID)
	sess.ClearPendingAppointment()
	if !result.Success {
		c.Log.Info("confirmation lost race for slot",
			zap.String("user_id", sess.UserID),
			zap.String("date", slot.Date),
			zap.String("time", slot.Time))
		return result.Message, true
	}

	c.Log.Info("appointment booked",
		zap.String("user_id", sess.UserID),
		zap.String("booking_id", result.Booking.BookingID),
		zap.String("doctor", result.Booking.Doctor))
	return ConfirmationMessage(result), true
}

// selectSlot records a tentative choice and asks the mandatory
// confirmation question. Nothing is booked here.
func (c *FlowController) selectSlot(ctx context.Context, sess *session.Session, message string) string {
	ordinal, ok := triage.ExtractSlotNumber(message)
	if !ok {
		ordinal = 0
	}
	return c.ProposeSlot(ctx, sess, ordinal)
}

// ProposeSlot resolves a 1-based ordinal against the listing the user
// was shown, records it as the tentative choice, and asks the
// confirmation question. Exposed for the model's slot-selection tool.
func (c *FlowController) ProposeSlot(ctx context.Context, sess *session.Session, ordinal int) string {
	shown := sess.ShownSlots()
	if len(shown) == 0 {
		shown = c.Schedule.ListAvailable()
		sess.SetShownSlots(shown)
	}

	if ordinal < 1 || ordinal > len(shown) {
		return fmt.Sprintf("Invalid slot number. Please choose between 1 and %d.", len(shown))
	}
	slot := shown[ordinal-1]

	reason := c.buildReason(ctx, sess)
	sess.SetPendingAppointment(&session.PendingAppointment{
		SlotNumber: ordinal,
		Slot:       slot,
		Reason:     reason,
	})
	return ConfirmQuestion(ordinal, slot, reason)
}

// proposeByDoctor handles "book me with Dr. Lee": when the message
// names a doctor with open slots, the earliest one becomes the
// tentative choice.
func (c *FlowController) proposeByDoctor(sess *session.Session, message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, slot := range c.Schedule.ListAvailable() {
		if !strings.Contains(lower, strings.ToLower(doctorSurname(slot.Doctor))) {
			continue
		}
		slots := c.Schedule.ByDoctor(slot.Doctor)
		if len(slots) == 0 {
			continue
		}
		reason := "General consultation"
		sess.SetShownSlots(slots)
		sess.SetPendingAppointment(&session.PendingAppointment{
			SlotNumber: 1,
			Slot:       slots[0],
			Reason:     reason,
		})
		return ConfirmQuestion(1, slots[0], reason), true
	}
	return "", false
}

// doctorSurname strips the title so "Dr. Sarah Johnson" matches a
// message saying "with Johnson".
func doctorSurname(doctor string) string {
	fields := strings.Fields(doctor)
	if len(fields) == 0 {
		return doctor
	}
	return fields[len(fields)-1]
}

// ShowSlots shows the available listing, filtered to an explicitly
// named specialty, with a recommendation hint when the conversation
// carried symptoms. Exposed for the model's listing tool.
func (c *FlowController) ShowSlots(sess *session.Session, message string) string {
	var slots []models.Slot
	if sp := NamedSpecialty(message); sp != "" {
		slots = c.Schedule.BySpecialty(sp)
	}
	if len(slots) == 0 {
		slots = c.Schedule.ListAvailable()
	}
	sess.SetShownSlots(slots)

	listing := FormatSlots(slots)
	if symptom := lastSymptomLine(sess, message); symptom != "" {
		listing += fmt.Sprintf("\n\nBased on what you've told me, %s might be the best fit. Reply with a slot number and I'll get it set up.",
			RecommendSpecialty(symptom))
	}
	return listing
}

// buildReason assembles the consultation reason from the most recent
// symptom mention plus the day's recorded vitals, falling back to a
// generic reason. Best effort only.
func (c *FlowController) buildReason(ctx context.Context, sess *session.Session) string {
	symptom := lastSymptomLine(sess, "")
	if symptom == "" {
		return "General consultation"
	}

	reason := symptom
	if c.Retriever != nil {
		date := c.Retriever.ResolveQueryDate("today")
		if vitals, err := c.Retriever.RetrieveCategory(ctx, sess.UserID, date, models.CategoryVitals); err == nil && vitals != "" {
			reason = fmt.Sprintf("%s (recent vitals: %s)", symptom, vitals)
		}
	}
	return reason
}

// lastSymptomLine returns the most recent user turn that mentions a
// symptom, checking the in-flight message first.
func lastSymptomLine(sess *session.Session, current string) string {
	if current != "" && triage.HasSymptom(current) {
		return current
	}
	history := sess.History()
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == session.RoleUser && triage.HasSymptom(history[i].Text) {
			return history[i].Text
		}
	}
	return ""
}
