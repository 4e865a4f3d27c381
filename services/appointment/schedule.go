package appointment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"carelink/models"
	"carelink/services/notification"
	"carelink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Backend is the scheduling collaborator: slot listing and exclusive
// booking. Book is ordinal-based over the current available list (the
// surface exposed to the language model tools); ConfirmBooking books a
// concrete slot by identity and is what the confirmation step uses.
type Backend interface {
	ListAvailable() []models.Slot
	SlotsForWeek(weekOffset int) []models.Slot
	BySpecialty(specialty string) []models.Slot
	ByDoctor(doctor string) []models.Slot
	Book(ctx context.Context, slotIndex int, patientName, reason, userID string) models.BookingResult
	ConfirmBooking(ctx context.Context, slot models.Slot, patientName, reason, userID string) models.BookingResult
}

// InMemorySchedule is the process-local slot table. The availability
// flag is the one mutable, cross-user field in the system; all reads
// and the single write per slot go through the mutex so two users
// racing for the same slot can never both succeed.
type InMemorySchedule struct {
	mu           sync.Mutex
	slots        []models.Slot
	Notification notification.Service
	Now          func() time.Time
}

// NewInMemorySchedule builds a schedule over the given slot table.
// Pass nil slots for the default demo table.
func NewInMemorySchedule(slots []models.Slot, notif notification.Service) *InMemorySchedule {
	if slots == nil {
		slots = DefaultSlots()
	}
	owned := make([]models.Slot, len(slots))
	copy(owned, slots)
	return &InMemorySchedule{
		slots:        owned,
		Notification: notif,
		Now:          time.Now,
	}
}

func (s *InMemorySchedule) today() string {
	return s.Now().Format("2006-01-02")
}

// availableLocked filters to date >= today and available. Callers hold
// the mutex.
func (s *InMemorySchedule) availableLocked() []models.Slot {
	today := s.today()
	var out []models.Slot
	for _, slot := range s.slots {
		if slot.Date >= today && slot.Available {
			out = append(out, slot)
		}
	}
	return out
}

// ListAvailable returns all bookable slots from today onward.
func (s *InMemorySchedule) ListAvailable() []models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableLocked()
}

// SlotsForWeek returns available slots within the week starting
// weekOffset weeks from now (0 = current week).
func (s *InMemorySchedule) SlotsForWeek(weekOffset int) []models.Slot {
	start := s.Now().AddDate(0, 0, weekOffset*7)
	end := start.AddDate(0, 0, 6)
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	var out []models.Slot
	for _, slot := range s.ListAvailable() {
		if slot.Date >= startStr && slot.Date <= endStr {
			out = append(out, slot)
		}
	}
	return out
}

// BySpecialty returns available slots whose specialty contains the
// given name, case-insensitively.
func (s *InMemorySchedule) BySpecialty(specialty string) []models.Slot {
	needle := strings.ToLower(specialty)
	var out []models.Slot
	for _, slot := range s.ListAvailable() {
		if strings.Contains(strings.ToLower(slot.Specialty), needle) {
			out = append(out, slot)
		}
	}
	return out
}

// ByDoctor returns available slots for a doctor whose name contains the
// given fragment, case-insensitively.
func (s *InMemorySchedule) ByDoctor(doctor string) []models.Slot {
	needle := strings.ToLower(doctor)
	var out []models.Slot
	for _, slot := range s.ListAvailable() {
		if strings.Contains(strings.ToLower(slot.Doctor), needle) {
			out = append(out, slot)
		}
	}
	return out
}

// Book reserves the slot at the 1-based ordinal into the current
// available list. An out-of-range ordinal is a corrective result, not
// an error.
func (s *InMemorySchedule) Book(ctx context.Context, slotIndex int, patientName, reason, userID string) models.BookingResult {
	s.mu.Lock()
	available := s.availableLocked()
	if slotIndex < 1 || slotIndex > len(available) {
		s.mu.Unlock()
		return models.BookingResult{
			Success: false,
			Message: fmt.Sprintf("Invalid slot number. Please choose between 1 and %d.", len(available)),
		}
	}
	selected := available[slotIndex-1]
	booking := s.reserveLocked(selected, patientName, reason, userID)
	s.mu.Unlock()

	if booking == nil {
		return models.BookingResult{
			Success: false,
			Message: "That slot is no longer available. Please choose another one.",
		}
	}
	return s.notify(ctx, *booking)
}

// ConfirmBooking reserves a concrete slot, matched by (date, time,
// doctor) against the current table. The second of two racing
// confirmations observes the flipped availability flag and fails
// cleanly.
func (s *InMemorySchedule) ConfirmBooking(ctx context.Context, slot models.Slot, patientName, reason, userID string) models.BookingResult {
	s.mu.Lock()
	booking := s.reserveLocked(slot, patientName, reason, userID)
	s.mu.Unlock()

	if booking == nil {
		return models.BookingResult{
			Success: false,
			Message: "That slot is no longer available. Please choose another one.",
		}
	}
	return s.notify(ctx, *booking)
}

// reserveLocked flips the availability flag for the matching slot and
// builds the booking record. Returns nil when the slot is already
// taken or past. Callers hold the mutex.
func (s *InMemorySchedule) reserveLocked(target models.Slot, patientName, reason, userID string) *models.Booking {
	today := s.today()
	for i := range s.slots {
		if !s.slots[i].SameAppointment(target) {
			continue
		}
		if !s.slots[i].Available || s.slots[i].Date < today {
			return nil
		}
		s.slots[i].Available = false

		now := s.Now()
		return &models.Booking{
			PatientName: patientName,
			UserID:      userID,
			Date:        s.slots[i].Date,
			Time:        s.slots[i].Time,
			Doctor:      s.slots[i].Doctor,
			Specialty:   s.slots[i].Specialty,
			Reason:      reason,
			BookingID:   newBookingID(now),
			Status:      "confirmed",
			CreatedAt:   now,
		}
	}
	return nil
}

// newBookingID derives a unique id from a high-resolution timestamp
// plus a short random suffix, so rapid successive bookings never
// collide.
func newBookingID(now time.Time) string {
	return fmt.Sprintf("APT-%s-%s", now.Format("20060102150405"), uuid.New().String()[:4])
}

// notify creates the calendar event and sends the confirmation email.
// Booking success is already decided; notification failures only
// degrade the confirmation details.
func (s *InMemorySchedule) notify(ctx context.Context, booking models.Booking) models.BookingResult {
	logger := utils.GetLogger()

	result := models.BookingResult{
		Success: true,
		Message: "Appointment booked successfully!",
		Booking: &booking,
	}
	if s.Notification == nil {
		return result
	}

	event := s.Notification.CreateEvent(ctx, booking)
	result.CalendarEvent = &event

	if delivered := s.Notification.SendConfirmation(ctx, booking, event); delivered {
		result.EmailSent = true
	} else {
		logger.Warn("Booking confirmed but confirmation email was not delivered",
			zap.String("bookingID", booking.BookingID))
	}
	return result
}
