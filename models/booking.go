package models

import "time"

// Booking represents a confirmed appointment booking record.
type Booking struct {
	PatientName string    `json:"patient_name"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"appointment_date"` // "YYYY-MM-DD"
	Time        string    `json:"appointment_time"` // display time, e.g. "9:45 AM"
	Doctor      string    `json:"doctor"`
	Specialty   string    `json:"specialty"`
	Reason      string    `json:"reason"`
	BookingID   string    `json:"booking_id"` // unique, e.g. "APT-20250729094501-1a2b"
	Status      string    `json:"status"`     // "confirmed"
	CreatedAt   time.Time `json:"created_at"`
}

// BookingResult is returned by the scheduling backend's book operation.
// Success reflects slot reservation only; notification outcome is
// reported separately and never affects it.
type BookingResult struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message,omitempty"`
	Booking       *Booking       `json:"booking,omitempty"`
	CalendarEvent *CalendarEvent `json:"calendar_event,omitempty"`
	EmailSent     bool           `json:"email_sent"`
}
