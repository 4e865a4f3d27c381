package models

// Slot represents a bookable appointment window. Slots are immutable
// reference data except for Available, which is flipped exactly once at
// booking time.
type Slot struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	Day         string `json:"day"`  // day of week, e.g. "Tuesday"
	Time        string `json:"time"` // display time, e.g. "9:45 AM"
	Doctor      string `json:"doctor"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// SameAppointment reports whether two slots refer to the same bookable
// window. Date, time and doctor together identify a slot; Available is
// deliberately excluded.
func (s Slot) SameAppointment(other Slot) bool {
	return s.Date == other.Date && s.Time == other.Time && s.Doctor == other.Doctor
}
