package emergency

import (
	"strings"

	"carelink/services/followup"
	"carelink/services/session"
	"carelink/services/triage"
	"carelink/utils"

	"go.uber.org/zap"
)

// OfferQuestion is appended to any reply the severity classifier marks
// serious. Answering it is what arms or dismisses the scripted mode.
const OfferQuestion = "This sounds serious. Would you like me to call emergency services (911) and notify your emergency contacts? (yes/no)"

// escalationScripts are the canned replies for an active emergency,
// indexed by turn count (capped). While the machine is active these are
// the only replies the user sees; the language model is bypassed
// entirely.
var escalationScripts = []string{
	"I've contacted emergency services (911) and notified your emergency contacts. Help is on the way. Please stay where you are, try to remain calm, and keep your phone nearby. Are you somewhere safe?",
	"Help should be arriving soon. Stay as still as you can and keep breathing slowly. If you're able to, unlock your front door so the paramedics can get in. I'm staying right here with you.",
	"You're doing well. The paramedics are on their way. Keep taking slow, steady breaths. Can you tell me how you're feeling right now?",
	"I'm still here with you, and help is coming. Please stay as comfortable as you can and tell me the moment anything changes.",
}

// resolutionPhrases end an active emergency or dismiss a pending offer.
var resolutionPhrases = []string{
	"help arrived",
	"help has arrived",
	"help is here",
	"paramedics are here",
	"paramedics arrived",
	"i'm fine", "im fine", "i am fine",
	"i'm ok", "i'm okay", "im ok", "im okay",
	"feel better", "feeling better",
	"it passed", "it's passed",
	"false alarm",
}

// Machine runs the scripted emergency flow. It owns the turn while the
// session's emergency phase is anything but inactive.
type Machine struct {
	Scheduler followup.Scheduler
	Log       *zap.Logger
}

func NewMachine(scheduler followup.Scheduler) *Machine {
	return &Machine{
		Scheduler: scheduler,
		Log:       utils.GetLogger().Named("emergency"),
	}
}

// Engaged reports whether the machine should consume the next message
// for this session.
func (m *Machine) Engaged(sess *session.Session) bool {
	return sess.Emergency().Phase != session.EmergencyInactive
}

// Handle consumes one user message while the emergency flow is engaged.
func (m *Machine) Handle(sess *session.Session, message string) string {
	switch sess.Emergency().Phase {
	case session.EmergencyQuestionPending:
		return m.handleOffer(sess, message)
	case session.EmergencyActive:
		return m.handleActive(sess, message)
	}
	return ""
}

// handleOffer resolves the pending yes/no emergency offer.
func (m *Machine) handleOffer(sess *session.Session, message string) string {
	if isResolved(message) {
		sess.SetEmergency(session.EmergencyState{Phase: session.EmergencyInactive})
		return "I'm really glad to hear you're feeling better. I'll stand down for now, but please tell me right away if anything changes."
	}

	switch triage.Confirmation(message) {
	case triage.AnswerYes:
		return m.activate(sess)
	case triage.AnswerNo:
		sess.SetEmergency(session.EmergencyState{Phase: session.EmergencyInactive})
		if m.Scheduler != nil {
			m.Scheduler.Arm(sess.UserID, utils.DisplayName(sess.UserID))
		}
		return "Okay, I won't contact emergency services. Please don't hesitate to ask if you change your mind, and consider calling your doctor. I'll check in on you shortly to see how you're doing."
	}
	return "I want to make sure you're safe. Should I call emergency services (911) for you? Please answer yes or no."
}

// activate simulates the 911 call and contact notification, then
// enters scripted mode. The simulation is logged, never performed.
func (m *Machine) activate(sess *session.Session) string {
	reason := inferReason(sess.LastAssistantText())
	m.Log.Warn("SIMULATION: dialing 911 and notifying emergency contacts",
		zap.String("user_id", sess.UserID),
		zap.String("reason", reason))

	sess.SetEmergency(session.EmergencyState{
		Phase:     session.EmergencyActive,
		Reason:    reason,
		TurnCount: 1,
	})
	return escalationScripts[0]
}

// handleActive returns the next escalation script, or stands down on a
// resolution phrase.
func (m *Machine) handleActive(sess *session.Session, message string) string {
	if isResolved(message) {
		m.Log.Info("emergency resolved",
			zap.String("user_id", sess.UserID),
			zap.Int("turns", sess.Emergency().TurnCount))
		sess.SetEmergency(session.EmergencyState{Phase: session.EmergencyInactive})
		return "That's such a relief to hear. I'm glad help reached you. Rest up, and I'm right here whenever you need me."
	}

	count := sess.BumpEmergencyTurn()
	idx := count - 1
	if idx >= len(escalationScripts) {
		idx = len(escalationScripts) - 1
	}
	return escalationScripts[idx]
}

func isResolved(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range resolutionPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// inferReason annotates the emergency from the assistant reply that
// triggered the offer. Best effort; the generic fallback is fine.
func inferReason(lastReply string) string {
	lower := strings.ToLower(lastReply)
	switch {
	case strings.Contains(lower, "chest"):
		return "chest pain"
	case strings.Contains(lower, "heart"):
		return "heart pain"
	case strings.Contains(lower, "breath"):
		return "difficulty breathing"
	}
	return "medical emergency"
}
