package attendance

import "time"

// Status classifies a single check-in/check-out event or a derived
// attendance row. The display strings are the API contract; the set is
// closed even though the column storing them is free text.
type Status string

const (
	StatusOnTime       Status = "On time"
	StatusLate         Status = "Late"
	StatusAbsent       Status = "Absent"
	StatusReentered    Status = "Re-entered"
	StatusSteppedOut   Status = "Stepped out"
	StatusEndOfShift   Status = "End of shift"
	StatusUndetermined Status = "Undetermined"
)

func (s Status) String() string {
	return string(s)
}

// Placeholders rendered when a row has no usable value.
const (
	NoData     = "no data"
	NoDuration = "-"
)

// Record is one derived attendance row for an employee on one calendar
// date. Records are computed fresh on every read and never persisted.
type Record struct {
	EmployeeName string `json:"fullName"`
	Date         string `json:"date"`
	DayOfWeek    string `json:"dayOfWeek"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	WorkingTime  string `json:"workingTime"`
	Status       Status `json:"status"`
}

// Thresholds are the times of day, as offsets from midnight, that separate
// on-time from late arrivals and mid-day from end-of-shift departures.
type Thresholds struct {
	CheckInDeadline  time.Duration
	CheckOutDeadline time.Duration
}

// DefaultThresholds returns the standard 08:30 / 17:30 working day.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CheckInDeadline:  8*time.Hour + 30*time.Minute,
		CheckOutDeadline: 17*time.Hour + 30*time.Minute,
	}
}
