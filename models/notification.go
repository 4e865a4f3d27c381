package models

// CalendarEvent is the reference returned by the notification backend
// after creating a calendar entry for a booking.
type CalendarEvent struct {
	EventID  string `json:"event_id"`
	EventURL string `json:"event_url"`
	Status   string `json:"status"`
	Real     bool   `json:"real_calendar"` // false when running in simulation mode
}

// FollowupPayload is the delayed check-in task payload carried on the
// follow-up queue.
type FollowupPayload struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}
