package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmployeeRepo serves a single employee; lookups for anyone else fail.
type stubEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != s.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.emp, nil
}

// stubAccessLogRepo serves canned events and records whether it was asked.
type stubAccessLogRepo struct {
	accesslog.AccessLogRepository
	logs   []accesslog.AccessLog
	called bool
}

func (s *stubAccessLogRepo) ListByEmployeeBetween(_ context.Context, _ string, from, to time.Time) ([]accesslog.AccessLog, error) {
	s.called = true
	var out []accesslog.AccessLog
	for _, log := range s.logs {
		if !log.AccessTime.Before(from) && !log.AccessTime.After(to) {
			out = append(out, log)
		}
	}
	return out, nil
}

const historyTestEmployeeID = "7d9c2f66-1c3a-4bfa-9a41-58a1f1a2b3c4"

func newHistoryTestService(logs []accesslog.AccessLog, historyDays int) (attendance.AttendanceService, *stubAccessLogRepo) {
	logRepo := &stubAccessLogRepo{logs: logs}
	empRepo := &stubEmployeeRepo{emp: employee.Employee{ID: historyTestEmployeeID, FullName: "Dana Reeve"}}
	return NewAttendanceService(logRepo, empRepo, attendance.DefaultThresholds(), historyDays), logRepo
}

func TestHistoryUnknownEmployeeFailsBeforeDerivation(t *testing.T) {
	svc, logRepo := newHistoryTestService(nil, 30)

	records, err := svc.History(context.Background(), "not-a-known-id")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Nil(t, records)
	assert.False(t, logRepo.called)
}

func TestHistoryEmptyWindowYieldsOneAbsentRowPerDate(t *testing.T) {
	svc, _ := newHistoryTestService(nil, 30)

	records, err := svc.History(context.Background(), historyTestEmployeeID)
	require.NoError(t, err)

	// The window includes both endpoints: today plus 30 days back.
	require.Len(t, records, 31)
	for _, rec := range records {
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Equal(t, attendance.NoData, rec.CheckIn)
		assert.Equal(t, attendance.NoData, rec.CheckOut)
		assert.Equal(t, attendance.NoDuration, rec.WorkingTime)
		assert.Equal(t, "Dana Reeve", rec.EmployeeName)
	}
}

func TestHistoryIsDateDescending(t *testing.T) {
	svc, _ := newHistoryTestService(nil, 7)

	records, err := svc.History(context.Background(), historyTestEmployeeID)
	require.NoError(t, err)
	require.Len(t, records, 8)

	today := time.Now()
	assert.Equal(t, today.Format("02/01/2006"), records[0].Date)
	assert.Equal(t, today.AddDate(0, 0, -7).Format("02/01/2006"), records[len(records)-1].Date)

	prev, err := time.ParseInLocation("02/01/2006", records[0].Date, time.Local)
	require.NoError(t, err)
	for _, rec := range records[1:] {
		date, err := time.ParseInLocation("02/01/2006", rec.Date, time.Local)
		require.NoError(t, err)
		assert.True(t, date.Before(prev), "dates must descend")
		prev = date
	}
}

func TestHistoryMixesDerivedAndAbsentDays(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	in := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 8, 0, 0, 0, time.Local)
	out := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 17, 45, 0, 0, time.Local)

	svc, _ := newHistoryTestService([]accesslog.AccessLog{
		{AccessType: accesslog.EventCheckIn, AccessTime: in},
		{AccessType: accesslog.EventCheckOut, AccessTime: out},
	}, 3)

	records, err := svc.History(context.Background(), historyTestEmployeeID)
	require.NoError(t, err)
	require.Len(t, records, 4)

	worked := records[1]
	assert.Equal(t, attendance.StatusEndOfShift, worked.Status)
	assert.Equal(t, "08:00", worked.CheckIn)
	assert.Equal(t, "17:45", worked.CheckOut)
	assert.Equal(t, "9h45p", worked.WorkingTime)

	for i, rec := range records {
		if i == 1 {
			continue
		}
		assert.Equal(t, attendance.StatusAbsent, rec.Status, "day %d should be absent", i)
	}
}
