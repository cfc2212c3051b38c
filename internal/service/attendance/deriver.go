package attendance

import (
	"fmt"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
)

// Deriver turns one employee's events for a single calendar day into
// attendance rows. It is a pure function over an immutable slice: events are
// never reordered, only partitioned by type, and running it twice yields
// identical output.
type Deriver struct {
	thresholds attendance.Thresholds
}

func NewDeriver(thresholds attendance.Thresholds) *Deriver {
	return &Deriver{thresholds: thresholds}
}

// DeriveDay pairs the day's check-ins with check-outs using two cursors and
// emits one row per check-in processed. Days without a single check-in yield
// exactly one Absent row. The pairing tolerates unequal counts from missed
// scans: a leading check-out older than the first check-in is consumed as a
// leftover of the previous day's session, and unpaired check-ins render
// "no data" for the checkout side.
//
// Two order-dependent tie-breaks are part of the contract:
//   - a first check-in after the deadline stays Late even when a checkout
//     pairs with it (it never becomes Stepped out);
//   - the last check-in whose paired checkout lands at or after the
//     checkout deadline becomes End of shift.
func (d *Deriver) DeriveDay(employeeName string, date time.Time, events []accesslog.AccessLog) []attendance.Record {
	var checkIns, checkOuts []accesslog.AccessLog
	for _, ev := range events {
		switch ev.AccessType {
		case accesslog.EventCheckIn:
			checkIns = append(checkIns, ev)
		case accesslog.EventCheckOut:
			checkOuts = append(checkOuts, ev)
		}
	}

	dateLabel := date.Format("02/01/2006")
	dayOfWeek := date.Weekday().String()

	if len(checkIns) == 0 {
		return []attendance.Record{{
			EmployeeName: employeeName,
			Date:         dateLabel,
			DayOfWeek:    dayOfWeek,
			CheckIn:      attendance.NoData,
			CheckOut:     attendance.NoData,
			WorkingTime:  attendance.NoDuration,
			Status:       attendance.StatusAbsent,
		}}
	}

	records := make([]attendance.Record, 0, len(checkIns))
	ci, co := 0, 0
	hasPreviousCheckOut := false

	for ci < len(checkIns) {
		checkIn := checkIns[ci]
		checkInTime := checkIn.AccessTime.Format("15:04")
		checkOutTime := ""
		workingTime := attendance.NoDuration
		status := attendance.StatusUndetermined

		// A check-out older than the current check-in can only be the tail
		// of a previous session; consume it without pairing.
		if co < len(checkOuts) && checkOuts[co].AccessTime.Before(checkIn.AccessTime) {
			checkOutTime = checkOuts[co].AccessTime.Format("15:04")
			hasPreviousCheckOut = true
			co++
		}

		if ci == 0 && !hasPreviousCheckOut {
			if timeOfDay(checkIn.AccessTime) <= d.thresholds.CheckInDeadline {
				status = attendance.StatusOnTime
			} else {
				status = attendance.StatusLate
			}
		} else {
			status = attendance.StatusReentered
		}

		if co < len(checkOuts) && (checkOutTime == "" || checkOuts[co].AccessTime.After(checkIn.AccessTime)) {
			checkOut := checkOuts[co]
			checkOutTime = checkOut.AccessTime.Format("15:04")
			workingTime = formatWorkingTime(checkOut.AccessTime.Sub(checkIn.AccessTime))

			if ci == 0 && timeOfDay(checkIn.AccessTime) > d.thresholds.CheckInDeadline {
				status = attendance.StatusLate
			} else if ci == len(checkIns)-1 && timeOfDay(checkOut.AccessTime) >= d.thresholds.CheckOutDeadline {
				status = attendance.StatusEndOfShift
			} else {
				status = attendance.StatusSteppedOut
			}
			co++
		}

		if checkOutTime == "" {
			checkOutTime = attendance.NoData
		}

		records = append(records, attendance.Record{
			EmployeeName: employeeName,
			Date:         dateLabel,
			DayOfWeek:    dayOfWeek,
			CheckIn:      checkInTime,
			CheckOut:     checkOutTime,
			WorkingTime:  workingTime,
			Status:       status,
		})
		ci++
	}

	return records
}

// formatWorkingTime renders a duration as "9h35p", or minutes only under an
// hour. Durations are floored to whole minutes; zero or negative spans
// (clock skew, duplicate timestamps) render as "-".
func formatWorkingTime(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes <= 0 {
		return attendance.NoDuration
	}
	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%dh%02dp", hours, minutes%60)
	}
	return fmt.Sprintf("%dp", minutes)
}
