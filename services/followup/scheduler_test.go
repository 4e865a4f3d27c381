package followup

import (
	"strings"
	"testing"
	"time"

	"carelink/services/session"
)

func TestTimerSchedulerQueuesReminder(t *testing.T) {
	store := session.NewStore()
	s := NewTimerScheduler(store, 10*time.Millisecond)

	s.Arm("user_mary", "Mary")

	deadline := time.After(2 * time.Second)
	for {
		followups := store.GetOrCreate("user_mary").DrainFollowups()
		if len(followups) == 1 {
			if !strings.Contains(followups[0], "Mary") {
				t.Fatalf("reminder %q should address the user by name", followups[0])
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("reminder never arrived")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestArmingTwiceQueuesTwoReminders(t *testing.T) {
	store := session.NewStore()
	s := NewTimerScheduler(store, 5*time.Millisecond)

	s.Arm("user_mary", "Mary")
	s.Arm("user_mary", "Mary")

	deadline := time.After(2 * time.Second)
	total := 0
	for total < 2 {
		total += len(store.GetOrCreate("user_mary").DrainFollowups())
		select {
		case <-deadline:
			t.Fatalf("got %d reminders, want 2", total)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestReminderMessage(t *testing.T) {
	msg := ReminderMessage("John")
	if !strings.HasPrefix(msg, "Hi John!") {
		t.Fatalf("ReminderMessage = %q", msg)
	}
}
