package emergency

import (
	"strings"
	"testing"

	"carelink/services/session"
)

type fakeScheduler struct {
	armed []string
}

func (f *fakeScheduler) Arm(userID, name string) {
	f.armed = append(f.armed, userID)
}

func pendingSession(t *testing.T, lastReply string) *session.Session {
	t.Helper()
	sess := session.NewStore().GetOrCreate("user_john")
	if lastReply != "" {
		sess.AppendTurn(session.RoleAssistant, lastReply)
	}
	sess.SetEmergency(session.EmergencyState{Phase: session.EmergencyQuestionPending})
	return sess
}

func TestOfferAcceptedActivatesScriptedMode(t *testing.T) {
	m := NewMachine(nil)
	sess := pendingSession(t, "That chest pain sounds serious.")

	reply := m.Handle(sess, "yes")
	if !strings.Contains(reply, "911") {
		t.Fatalf("activation reply %q should mention 911", reply)
	}

	st := sess.Emergency()
	if st.Phase != session.EmergencyActive {
		t.Fatalf("phase = %q, want active", st.Phase)
	}
	if st.TurnCount != 1 {
		t.Fatalf("turn count = %d, want 1", st.TurnCount)
	}
	if st.Reason != "chest pain" {
		t.Fatalf("reason = %q, want chest pain", st.Reason)
	}
}

func TestOfferDeclinedArmsFollowup(t *testing.T) {
	sched := &fakeScheduler{}
	m := NewMachine(sched)
	sess := pendingSession(t, "")

	reply := m.Handle(sess, "no")
	if sess.Emergency().Phase != session.EmergencyInactive {
		t.Fatalf("decline should deactivate the emergency state")
	}
	if len(sched.armed) != 1 || sched.armed[0] != "user_john" {
		t.Fatalf("armed = %v, want one check-in for user_john", sched.armed)
	}
	if !strings.Contains(reply, "check in") {
		t.Fatalf("decline reply %q should promise a check-in", reply)
	}
}

func TestOfferUnclearAnswerReprompts(t *testing.T) {
	m := NewMachine(nil)
	sess := pendingSession(t, "")

	reply := m.Handle(sess, "what do you mean")
	if sess.Emergency().Phase != session.EmergencyQuestionPending {
		t.Fatalf("unclear answer should keep the question pending")
	}
	if !strings.Contains(reply, "yes or no") {
		t.Fatalf("reprompt %q should ask for yes or no", reply)
	}
}

func TestActiveTurnsWalkScriptsAndCap(t *testing.T) {
	m := NewMachine(nil)
	sess := pendingSession(t, "")
	m.Handle(sess, "yes")

	var replies []string
	for i := 0; i < 5; i++ {
		replies = append(replies, m.Handle(sess, "still here"))
	}

	if sess.Emergency().TurnCount != 6 {
		t.Fatalf("turn count = %d, want 6", sess.Emergency().TurnCount)
	}
	if replies[0] != escalationScripts[1] {
		t.Fatalf("second turn reply = %q, want script 2", replies[0])
	}
	// Past the end of the script table the last entry repeats.
	if replies[3] != escalationScripts[len(escalationScripts)-1] {
		t.Fatalf("capped reply = %q, want final script", replies[3])
	}
	if replies[4] != replies[3] {
		t.Fatalf("capped replies should repeat")
	}
}

func TestResolutionEndsActiveEmergency(t *testing.T) {
	m := NewMachine(nil)
	sess := pendingSession(t, "")
	m.Handle(sess, "yes")

	reply := m.Handle(sess, "the paramedics are here now, I'm fine")
	if sess.Emergency().Phase != session.EmergencyInactive {
		t.Fatalf("resolution should deactivate the emergency state")
	}
	if !strings.Contains(strings.ToLower(reply), "relief") {
		t.Fatalf("resolution reply = %q, want a relieved acknowledgement", reply)
	}
}

func TestResolutionDismissesPendingOffer(t *testing.T) {
	m := NewMachine(nil)
	sess := pendingSession(t, "")

	m.Handle(sess, "actually I feel better now")
	if sess.Emergency().Phase != session.EmergencyInactive {
		t.Fatalf("feeling better should dismiss the pending offer")
	}
}
