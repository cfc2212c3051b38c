package attendance

import (
	"testing"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, second, 0, time.Local)
}

func event(eventType accesslog.EventType, t time.Time) accesslog.AccessLog {
	return accesslog.AccessLog{AccessType: eventType, AccessTime: t}
}

func newTestDeriver() *Deriver {
	return NewDeriver(attendance.DefaultThresholds())
}

func TestDeriveDayEmptyDayIsAbsent(t *testing.T) {
	records := newTestDeriver().DeriveDay("Jane Doe", testDate, nil)

	require.Len(t, records, 1)
	assert.Equal(t, "Jane Doe", records[0].EmployeeName)
	assert.Equal(t, "02/03/2026", records[0].Date)
	assert.Equal(t, "Monday", records[0].DayOfWeek)
	assert.Equal(t, attendance.NoData, records[0].CheckIn)
	assert.Equal(t, attendance.NoData, records[0].CheckOut)
	assert.Equal(t, attendance.NoDuration, records[0].WorkingTime)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}

func TestDeriveDayCheckOutOnlyIsAbsent(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckOut, at(17, 0, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}

func TestDeriveDayUnpairedCheckIn(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(8, 15, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 1)
	assert.Equal(t, "08:15", records[0].CheckIn)
	assert.Equal(t, attendance.NoData, records[0].CheckOut)
	assert.Equal(t, attendance.NoDuration, records[0].WorkingTime)
	assert.Equal(t, attendance.StatusOnTime, records[0].Status)
}

func TestDeriveDayCheckInDeadlineBoundary(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want attendance.Status
	}{
		{"exactly at deadline", at(8, 30, 0), attendance.StatusOnTime},
		{"one second past", at(8, 30, 1), attendance.StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			events := []accesslog.AccessLog{event(accesslog.EventCheckIn, c.in)}
			records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

			require.Len(t, records, 1)
			assert.Equal(t, c.want, records[0].Status)
		})
	}
}

func TestDeriveDayCheckOutDeadlineBoundary(t *testing.T) {
	cases := []struct {
		name string
		out  time.Time
		want attendance.Status
	}{
		{"before deadline steps out", at(17, 29, 59), attendance.StatusSteppedOut},
		{"exactly at deadline ends shift", at(17, 30, 0), attendance.StatusEndOfShift},
		{"past deadline ends shift", at(17, 30, 1), attendance.StatusEndOfShift},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			events := []accesslog.AccessLog{
				event(accesslog.EventCheckIn, at(8, 0, 0)),
				event(accesslog.EventCheckOut, c.out),
			}
			records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

			require.Len(t, records, 1)
			assert.Equal(t, c.want, records[0].Status)
		})
	}
}

func TestDeriveDayFullShift(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(8, 10, 0)),
		event(accesslog.EventCheckOut, at(17, 45, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 1)
	assert.Equal(t, "08:10", records[0].CheckIn)
	assert.Equal(t, "17:45", records[0].CheckOut)
	assert.Equal(t, "9h35p", records[0].WorkingTime)
	assert.Equal(t, attendance.StatusEndOfShift, records[0].Status)
}

func TestDeriveDayLateFirstCheckInStaysLate(t *testing.T) {
	// 09:00 in, 11:00 out, 14:00 in again with no matching checkout.
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(9, 0, 0)),
		event(accesslog.EventCheckOut, at(11, 0, 0)),
		event(accesslog.EventCheckIn, at(14, 0, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 2)

	assert.Equal(t, "09:00", records[0].CheckIn)
	assert.Equal(t, "11:00", records[0].CheckOut)
	assert.Equal(t, "2h00p", records[0].WorkingTime)
	assert.Equal(t, attendance.StatusLate, records[0].Status)

	assert.Equal(t, "14:00", records[1].CheckIn)
	assert.Equal(t, attendance.NoData, records[1].CheckOut)
	assert.Equal(t, attendance.NoDuration, records[1].WorkingTime)
	assert.Equal(t, attendance.StatusReentered, records[1].Status)
}

func TestDeriveDayMidDayBreak(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(8, 0, 0)),
		event(accesslog.EventCheckOut, at(12, 0, 0)),
		event(accesslog.EventCheckIn, at(13, 0, 0)),
		event(accesslog.EventCheckOut, at(17, 40, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 2)

	assert.Equal(t, attendance.StatusSteppedOut, records[0].Status)
	assert.Equal(t, "4h00p", records[0].WorkingTime)

	assert.Equal(t, attendance.StatusEndOfShift, records[1].Status)
	assert.Equal(t, "4h40p", records[1].WorkingTime)
}

func TestDeriveDayStaleCheckOutConsumed(t *testing.T) {
	// A checkout recorded before the first check-in is the tail of an
	// earlier session; the first check-in is treated as a re-entry.
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckOut, at(7, 50, 0)),
		event(accesslog.EventCheckIn, at(8, 0, 0)),
		event(accesslog.EventCheckOut, at(16, 0, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 1)
	assert.Equal(t, "08:00", records[0].CheckIn)
	assert.Equal(t, "16:00", records[0].CheckOut)
	assert.Equal(t, "8h00p", records[0].WorkingTime)
	assert.Equal(t, attendance.StatusSteppedOut, records[0].Status)
}

func TestDeriveDaySimultaneousPairRendersNoDuration(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(8, 0, 0)),
		event(accesslog.EventCheckOut, at(8, 0, 0)),
	}

	records := newTestDeriver().DeriveDay("Jane Doe", testDate, events)

	require.Len(t, records, 1)
	assert.Equal(t, "08:00", records[0].CheckIn)
	assert.Equal(t, "08:00", records[0].CheckOut)
	assert.Equal(t, attendance.NoDuration, records[0].WorkingTime)
}

func TestDeriveDayIsIdempotent(t *testing.T) {
	events := []accesslog.AccessLog{
		event(accesslog.EventCheckIn, at(9, 0, 0)),
		event(accesslog.EventCheckOut, at(11, 0, 0)),
		event(accesslog.EventCheckIn, at(14, 0, 0)),
		event(accesslog.EventCheckOut, at(18, 0, 0)),
	}

	d := newTestDeriver()
	first := d.DeriveDay("Jane Doe", testDate, events)
	second := d.DeriveDay("Jane Doe", testDate, events)

	assert.Equal(t, first, second)
}

func TestFormatWorkingTime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-5 * time.Minute, attendance.NoDuration},
		{0, attendance.NoDuration},
		{30 * time.Second, attendance.NoDuration},
		{1 * time.Minute, "1p"},
		{59 * time.Minute, "59p"},
		{60 * time.Minute, "1h00p"},
		{9*time.Hour + 35*time.Minute, "9h35p"},
		{9*time.Hour + 5*time.Minute + 40*time.Second, "9h05p"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, formatWorkingTime(c.d), "formatWorkingTime(%v)", c.d)
	}
}
