package attendance

import (
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
)

// Classifier assigns a status label to a single event at ingestion time,
// before full-day context exists. It is pure; all I/O stays with callers.
type Classifier struct {
	thresholds attendance.Thresholds
}

func NewClassifier(thresholds attendance.Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// InferType resolves the direction of an event from an alternating-type
// device. lastToday is the employee's most recent event of the current
// calendar day, or nil. The first scan of a day is always a check-in; after
// that the type strictly flips.
func (c *Classifier) InferType(lastToday *accesslog.AccessLog) accesslog.EventType {
	if lastToday == nil {
		return accesslog.EventCheckIn
	}
	return lastToday.AccessType.Opposite()
}

// Classify labels one event from its type and timestamp alone.
func (c *Classifier) Classify(eventType accesslog.EventType, at time.Time) attendance.Status {
	switch eventType {
	case accesslog.EventCheckIn:
		if timeOfDay(at) <= c.thresholds.CheckInDeadline {
			return attendance.StatusOnTime
		}
		return attendance.StatusLate
	case accesslog.EventCheckOut:
		if timeOfDay(at) <= c.thresholds.CheckOutDeadline {
			return attendance.StatusSteppedOut
		}
		return attendance.StatusEndOfShift
	}
	return attendance.StatusUndetermined
}

// timeOfDay returns t's wall-clock time as an offset from 00:00. Reading the
// clock fields directly keeps deadline comparisons stable on days where a DST
// shift makes the elapsed time since midnight disagree with the clock.
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// dateOf truncates t to its calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
