package followup

import (
	"fmt"
	"time"

	"carelink/services/session"
	"carelink/utils"

	"go.uber.org/zap"
)

// ReminderMessage is the fixed check-in text queued after a delay.
func ReminderMessage(name string) string {
	return fmt.Sprintf("Hi %s! Just checking in — how are you feeling now? Any change since we last spoke?", name)
}

// Scheduler arms a one-shot deferred check-in for a user. Arming twice
// queues two reminders; de-duplication is deliberately absent.
type Scheduler interface {
	Arm(userID, name string)
}

// TimerScheduler is the in-process implementation used when no Redis
// is configured. The timer callback only appends to the user's inbox;
// the transport poll drains it.
type TimerScheduler struct {
	Store *session.Store
	Delay time.Duration
}

// NewTimerScheduler builds an in-process scheduler over the session
// store.
func NewTimerScheduler(store *session.Store, delay time.Duration) *TimerScheduler {
	return &TimerScheduler{Store: store, Delay: delay}
}

// Arm queues one reminder for userID after the configured delay.
func (s *TimerScheduler) Arm(userID, name string) {
	logger := utils.GetLogger()
	logger.Info("Arming follow-up timer",
		zap.String("userID", userID),
		zap.Duration("delay", s.Delay))

	msg := ReminderMessage(name)
	time.AfterFunc(s.Delay, func() {
		s.Store.GetOrCreate(userID).PushFollowup(msg)
		logger.Info("Follow-up queued", zap.String("userID", userID))
	})
}
