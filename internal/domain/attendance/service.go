package attendance

import (
	"context"
	"time"
)

// AttendanceService derives attendance reports from the stored event log.
type AttendanceService interface {
	// History returns the trailing report window (configured number of days
	// back through today), most recent date first. Days without any events
	// yield a single Absent row.
	History(ctx context.Context, employeeID string) ([]Record, error)

	// Day returns the derived rows for one employee and one calendar date.
	Day(ctx context.Context, employeeID string, date time.Time) ([]Record, error)
}
