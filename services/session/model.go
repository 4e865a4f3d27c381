package session

import (
	"sync"

	"carelink/models"
)

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry. Insertion order is significant: the
// transcript doubles as model context and as the source of the most
// recent symptom line for consultation summaries.
type Turn struct {
	Role Role
	Text string
}

// EmergencyPhase is the explicit emergency sub-state. It replaces the
// upstream habit of inferring "was the emergency question asked?" from
// transcript substring scans.
type EmergencyPhase string

const (
	EmergencyInactive        EmergencyPhase = "inactive"
	EmergencyQuestionPending EmergencyPhase = "question_pending"
	EmergencyActive          EmergencyPhase = "active"
)

// EmergencyState tracks the scripted-response override mode.
type EmergencyState struct {
	Phase     EmergencyPhase
	Reason    string // best-effort annotation, never safety-critical
	TurnCount int
}

// PendingAppointment is a slot tentatively chosen by the user, awaiting
// a yes/no confirmation before any booking happens. SlotNumber is the
// 1-based ordinal into the session's last-shown slot listing, never a
// global index.
type PendingAppointment struct {
	SlotNumber int
	Slot       models.Slot
	Reason     string
	Summary    string
}

// Session is the per-user conversational and workflow state, held only
// for process lifetime. All mutation goes through methods; the inbox
// has its own lock so the deferred follow-up callback never contends
// with an in-flight turn.
type Session struct {
	UserID string

	mu         sync.Mutex
	transcript []Turn
	emergency  EmergencyState
	pending    *PendingAppointment
	slots      []models.Slot // listing last shown to this user

	inboxMu   sync.Mutex
	followups []string
}

func newSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		emergency: EmergencyState{Phase: EmergencyInactive},
	}
}

// AppendTurn records one transcript entry.
func (s *Session) AppendTurn(role Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Turn{Role: role, Text: text})
}

// History returns a copy of the transcript.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// LastAssistantText returns the most recent assistant turn, or "".
func (s *Session) LastAssistantText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Role == RoleAssistant {
			return s.transcript[i].Text
		}
	}
	return ""
}

// Emergency returns the current emergency sub-state.
func (s *Session) Emergency() EmergencyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emergency
}

// SetEmergency replaces the emergency sub-state.
func (s *Session) SetEmergency(state EmergencyState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emergency = state
}

// BumpEmergencyTurn increments the active-emergency turn counter and
// returns the new value.
func (s *Session) BumpEmergencyTurn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emergency.TurnCount++
	return s.emergency.TurnCount
}

// SetShownSlots records the listing last displayed to this user and
// invalidates any pending choice made against an older listing.
func (s *Session) SetShownSlots(slots []models.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make([]models.Slot, len(slots))
	copy(s.slots, slots)
	s.pending = nil
}

// ShownSlots returns a copy of the listing last displayed to this user.
func (s *Session) ShownSlots() []models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// SetPendingAppointment stores a tentatively chosen slot.
func (s *Session) SetPendingAppointment(p *PendingAppointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = p
}

// PendingAppointment returns the tentatively chosen slot, if any.
func (s *Session) PendingAppointment() *PendingAppointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// ClearPendingAppointment drops the tentative choice.
func (s *Session) ClearPendingAppointment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// PushFollowup appends a check-in reminder to the inbox. Safe to call
// from the scheduler callback while a turn for the same user is in
// flight.
func (s *Session) PushFollowup(msg string) {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	s.followups = append(s.followups, msg)
}

// DrainFollowups returns all queued reminders and clears the inbox.
// Delivery is at-most-once to the poller.
func (s *Session) DrainFollowups() []string {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	out := s.followups
	s.followups = nil
	return out
}

// reset clears conversational state for a new conversation signal.
// Queued follow-ups survive: they belong to the user, not the
// conversation.
func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.emergency = EmergencyState{Phase: EmergencyInactive}
	s.pending = nil
	s.slots = nil
}
