package notification

import (
	"context"

	"carelink/models"
)

// Service creates the externally-visible calendar event for a booking
// and sends the confirmation email. Notification failures never roll
// back a successful booking; callers treat both methods as best-effort.
type Service interface {
	CreateEvent(ctx context.Context, booking models.Booking) models.CalendarEvent
	SendConfirmation(ctx context.Context, booking models.Booking, event models.CalendarEvent) bool
}
