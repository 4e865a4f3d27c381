package appointment

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"carelink/models"
)

var scheduleNow = time.Date(2025, 7, 28, 9, 0, 0, 0, time.UTC)

func testSlots() []models.Slot {
	return []models.Slot{
		{Date: "2025-07-20", Day: "Sunday", Time: "9:00 AM", Doctor: "Dr. Past", Specialty: "General Medicine", Description: "Routine care", Available: true},
		{Date: "2025-07-29", Day: "Tuesday", Time: "10:00 AM", Doctor: "Dr. Sarah Johnson", Specialty: "General Medicine", Description: "Routine care", Available: true},
		{Date: "2025-07-30", Day: "Wednesday", Time: "2:00 PM", Doctor: "Dr. Michael Chen", Specialty: "Cardiology", Description: "Heart care", Available: true},
		{Date: "2025-08-06", Day: "Wednesday", Time: "11:00 AM", Doctor: "Dr. Michael Chen", Specialty: "Cardiology", Description: "Heart care", Available: true},
		{Date: "2025-07-31", Day: "Thursday", Time: "3:00 PM", Doctor: "Dr. Emily Rodriguez", Specialty: "Neurology", Description: "Brain and nerves", Available: false},
	}
}

func testSchedule() *InMemorySchedule {
	s := NewInMemorySchedule(testSlots(), nil)
	s.Now = func() time.Time { return scheduleNow }
	return s
}

func TestListAvailableSkipsPastAndTaken(t *testing.T) {
	s := testSchedule()
	got := s.ListAvailable()
	if len(got) != 3 {
		t.Fatalf("ListAvailable returned %d slots, want 3", len(got))
	}
	for _, slot := range got {
		if slot.Date < "2025-07-28" {
			t.Fatalf("past slot %s leaked into the listing", slot.Date)
		}
		if !slot.Available {
			t.Fatalf("taken slot leaked into the listing")
		}
	}
}

func TestSlotsForWeek(t *testing.T) {
	s := testSchedule()
	thisWeek := s.SlotsForWeek(0)
	for _, slot := range thisWeek {
		if slot.Date > "2025-08-03" {
			t.Fatalf("slot %s is outside the current week", slot.Date)
		}
	}
	nextWeek := s.SlotsForWeek(1)
	if len(nextWeek) != 1 || nextWeek[0].Date != "2025-08-06" {
		t.Fatalf("SlotsForWeek(1) = %v, want the 2025-08-06 slot", nextWeek)
	}
}

func TestBySpecialtyAndDoctor(t *testing.T) {
	s := testSchedule()
	if got := s.BySpecialty("cardiology"); len(got) != 2 {
		t.Fatalf("BySpecialty = %d slots, want 2", len(got))
	}
	if got := s.ByDoctor("chen"); len(got) != 2 {
		t.Fatalf("ByDoctor = %d slots, want 2", len(got))
	}
}

func TestBookByOrdinal(t *testing.T) {
	s := testSchedule()
	result := s.Book(context.Background(), 1, "Mary", "checkup", "user_mary")
	if !result.Success {
		t.Fatalf("Book failed: %s", result.Message)
	}
	if result.Booking == nil || result.Booking.Doctor != "Dr. Sarah Johnson" {
		t.Fatalf("booked the wrong slot: %+v", result.Booking)
	}
	if !strings.HasPrefix(result.Booking.BookingID, "APT-") {
		t.Fatalf("booking id %q missing APT prefix", result.Booking.BookingID)
	}
	if len(s.ListAvailable()) != 2 {
		t.Fatalf("booked slot still listed as available")
	}
}

func TestBookOutOfRange(t *testing.T) {
	s := testSchedule()
	result := s.Book(context.Background(), 9, "Mary", "checkup", "user_mary")
	if result.Success {
		t.Fatalf("out-of-range ordinal should not book")
	}
	if !strings.Contains(result.Message, "between 1 and 3") {
		t.Fatalf("message = %q, want the valid range", result.Message)
	}
}

func TestConfirmBookingRace(t *testing.T) {
	s := testSchedule()
	target := models.Slot{Date: "2025-07-30", Time: "2:00 PM", Doctor: "Dr. Michael Chen"}

	var wg sync.WaitGroup
	results := make([]models.BookingResult, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.ConfirmBooking(context.Background(), target, "Patient", "checkup", "user")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, r := range results {
		if r.Success {
			wins++
		} else if !strings.Contains(r.Message, "no longer available") {
			t.Fatalf("loser message = %q", r.Message)
		}
	}
	if wins != 1 {
		t.Fatalf("%d confirmations succeeded, want exactly 1", wins)
	}
}

func TestConfirmBookingStaleSlot(t *testing.T) {
	s := testSchedule()
	stale := models.Slot{Date: "2025-07-31", Time: "3:00 PM", Doctor: "Dr. Emily Rodriguez"}
	result := s.ConfirmBooking(context.Background(), stale, "Patient", "checkup", "user")
	if result.Success {
		t.Fatalf("an unavailable slot must not book")
	}
}
