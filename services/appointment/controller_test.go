package appointment

import (
	"context"
	"strings"
	"testing"

	"carelink/services/session"
)

func testController() (*FlowController, *session.Session) {
	c := NewFlowController(testSchedule(), nil)
	sess := session.NewStore().GetOrCreate("user_mary")
	return c, sess
}

func TestHandleIgnoresNonBookingMessages(t *testing.T) {
	c, sess := testController()
	if _, handled := c.Handle(context.Background(), sess, "I feel dizzy"); handled {
		t.Fatalf("a symptom report is not an appointment message")
	}
}

func TestListingShowsSlotsAndRecordsThem(t *testing.T) {
	c, sess := testController()
	reply, handled := c.Handle(context.Background(), sess, "I'd like to book an appointment")
	if !handled {
		t.Fatalf("booking request was not handled")
	}
	if !strings.Contains(reply, "Available Appointment Slots") {
		t.Fatalf("listing reply = %q", reply)
	}
	if len(sess.ShownSlots()) != 3 {
		t.Fatalf("shown slots = %d, want 3", len(sess.ShownSlots()))
	}
}

func TestListingFiltersNamedSpecialty(t *testing.T) {
	c, sess := testController()
	reply, _ := c.Handle(context.Background(), sess, "book me a cardiology appointment")
	if strings.Contains(reply, "Dr. Sarah Johnson") {
		t.Fatalf("cardiology listing should not include general medicine:\n%s", reply)
	}
	if len(sess.ShownSlots()) != 2 {
		t.Fatalf("shown slots = %d, want 2 cardiology slots", len(sess.ShownSlots()))
	}
}

func TestSelectionAsksForConfirmation(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")

	reply, handled := c.Handle(context.Background(), sess, "I'll take slot 2")
	if !handled {
		t.Fatalf("slot selection was not handled")
	}
	if !strings.Contains(reply, "Would you like to book this appointment?") {
		t.Fatalf("selection must ask for confirmation, got %q", reply)
	}

	pending := sess.PendingAppointment()
	if pending == nil || pending.SlotNumber != 2 {
		t.Fatalf("pending = %+v, want slot 2 recorded", pending)
	}
	if got := len(c.Schedule.ListAvailable()); got != 3 {
		t.Fatalf("selection alone must not book anything, %d slots left", got)
	}
}

func TestSelectionOutOfRange(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")

	reply, _ := c.Handle(context.Background(), sess, "slot 99 please")
	if !strings.Contains(reply, "Please choose between 1 and 3") {
		t.Fatalf("reply = %q, want the valid range", reply)
	}
	if sess.PendingAppointment() != nil {
		t.Fatalf("invalid ordinal must not record a pending choice")
	}
}

func TestConfirmationBooks(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")
	c.Handle(context.Background(), sess, "slot 1")

	reply, handled := c.Handle(context.Background(), sess, "yes")
	if !handled {
		t.Fatalf("confirmation was not handled")
	}
	if !strings.Contains(reply, "Appointment Confirmed") {
		t.Fatalf("confirmation reply = %q", reply)
	}
	if sess.PendingAppointment() != nil {
		t.Fatalf("pending choice should clear after booking")
	}
	if got := len(c.Schedule.ListAvailable()); got != 2 {
		t.Fatalf("%d slots left, want 2", got)
	}
}

func TestRelaxedAffirmativeOnlyWhilePending(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")
	c.Handle(context.Background(), sess, "slot 1")

	reply, handled := c.Handle(context.Background(), sess, "sure, book it")
	if !handled || !strings.Contains(reply, "Appointment Confirmed") {
		t.Fatalf("relaxed affirmative should confirm while pending, got %q", reply)
	}
}

func TestDeclineClearsPending(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")
	c.Handle(context.Background(), sess, "slot 1")

	reply, _ := c.Handle(context.Background(), sess, "no, cancel")
	if !strings.Contains(reply, "was not booked") {
		t.Fatalf("decline reply = %q", reply)
	}
	if sess.PendingAppointment() != nil {
		t.Fatalf("decline should clear the pending choice")
	}
	if got := len(c.Schedule.ListAvailable()); got != 3 {
		t.Fatalf("decline must not book, %d slots left", got)
	}
}

func TestConfirmationLosesRaceCleanly(t *testing.T) {
	c, sess := testController()
	c.Handle(context.Background(), sess, "show me appointments")
	c.Handle(context.Background(), sess, "slot 1")

	// Another user takes the same slot before the confirmation lands.
	other := session.NewStore().GetOrCreate("user_john")
	c.Handle(context.Background(), other, "show me appointments")
	c.Handle(context.Background(), other, "slot 1")
	if reply, _ := c.Handle(context.Background(), other, "yes"); !strings.Contains(reply, "Appointment Confirmed") {
		t.Fatalf("first booking should succeed, got %q", reply)
	}

	reply, _ := c.Handle(context.Background(), sess, "yes")
	if !strings.Contains(reply, "no longer available") {
		t.Fatalf("second confirmation reply = %q, want a clean failure", reply)
	}
	if got := len(c.Schedule.ListAvailable()); got != 2 {
		t.Fatalf("%d slots left, want 2", got)
	}
}

func TestBookingByDoctorName(t *testing.T) {
	c, sess := testController()
	reply, handled := c.Handle(context.Background(), sess, "can I book an appointment with Dr. Chen?")
	if !handled {
		t.Fatalf("doctor-name booking was not handled")
	}
	if !strings.Contains(reply, "Dr. Michael Chen") || !strings.Contains(reply, "Would you like to book this appointment?") {
		t.Fatalf("reply = %q, want a confirmation prompt for Dr. Chen", reply)
	}
	pending := sess.PendingAppointment()
	if pending == nil || pending.Slot.Date != "2025-07-30" {
		t.Fatalf("pending = %+v, want the earliest Chen slot", pending)
	}
}

func TestRecommendSpecialty(t *testing.T) {
	cases := []struct {
		symptoms string
		want     string
	}{
		{"my chest hurts", "Cardiology"},
		{"I keep getting headaches", "Neurology"},
		{"general tiredness", "General Medicine"},
	}
	for _, c := range cases {
		if got := RecommendSpecialty(c.symptoms); got != c.want {
			t.Fatalf("RecommendSpecialty(%q) = %q, want %q", c.symptoms, got, c.want)
		}
	}
}
