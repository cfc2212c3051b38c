package attendance

import (
	"testing"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTypeFirstEventOfDayIsCheckIn(t *testing.T) {
	c := NewClassifier(attendance.DefaultThresholds())

	assert.Equal(t, accesslog.EventCheckIn, c.InferType(nil))
}

func TestInferTypeAlternates(t *testing.T) {
	c := NewClassifier(attendance.DefaultThresholds())

	last := &accesslog.AccessLog{AccessType: accesslog.EventCheckIn}
	assert.Equal(t, accesslog.EventCheckOut, c.InferType(last))

	last.AccessType = accesslog.EventCheckOut
	assert.Equal(t, accesslog.EventCheckIn, c.InferType(last))
}

func TestClassifyCheckIn(t *testing.T) {
	c := NewClassifier(attendance.DefaultThresholds())

	cases := []struct {
		name string
		at   time.Time
		want attendance.Status
	}{
		{"early morning", at(6, 0, 0), attendance.StatusOnTime},
		{"exactly at deadline", at(8, 30, 0), attendance.StatusOnTime},
		{"one second past", at(8, 30, 1), attendance.StatusLate},
		{"afternoon", at(14, 0, 0), attendance.StatusLate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(accesslog.EventCheckIn, tc.at))
		})
	}
}

func TestClassifyCheckOut(t *testing.T) {
	c := NewClassifier(attendance.DefaultThresholds())

	cases := []struct {
		name string
		at   time.Time
		want attendance.Status
	}{
		{"mid-day", at(12, 0, 0), attendance.StatusSteppedOut},
		{"exactly at deadline", at(17, 30, 0), attendance.StatusSteppedOut},
		{"one second past", at(17, 30, 1), attendance.StatusEndOfShift},
		{"evening", at(20, 0, 0), attendance.StatusEndOfShift},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(accesslog.EventCheckOut, tc.at))
		})
	}
}

func TestClassifyUnknownTypeIsUndetermined(t *testing.T) {
	c := NewClassifier(attendance.DefaultThresholds())

	assert.Equal(t, attendance.StatusUndetermined, c.Classify(accesslog.EventType("Badge"), at(9, 0, 0)))
}

func TestTimeOfDayIgnoresDate(t *testing.T) {
	a := time.Date(2026, time.January, 5, 8, 30, 0, 0, time.Local)
	b := time.Date(2026, time.August, 20, 8, 30, 0, 0, time.Local)

	assert.Equal(t, timeOfDay(a), timeOfDay(b))
}

func TestTimeOfDayFollowsWallClockAcrossDSTShift(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is a spring-forward day; only 8 hours elapse between
	// midnight and a 09:00 clock reading.
	shiftDay := time.Date(2026, time.March, 8, 9, 0, 0, 0, loc)
	assert.Equal(t, 9*time.Hour, timeOfDay(shiftDay))

	c := NewClassifier(attendance.DefaultThresholds())
	assert.Equal(t, attendance.StatusLate, c.Classify(accesslog.EventCheckIn, shiftDay))
}
