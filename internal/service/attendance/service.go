package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	accesslog.AccessLogRepository
	employee.EmployeeRepository
	deriver     *Deriver
	historyDays int
}

func NewAttendanceService(
	accessLogRepo accesslog.AccessLogRepository,
	employeeRepo employee.EmployeeRepository,
	thresholds attendance.Thresholds,
	historyDays int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AccessLogRepository: accessLogRepo,
		EmployeeRepository:  employeeRepo,
		deriver:             NewDeriver(thresholds),
		historyDays:         historyDays,
	}
}

// History implements attendance.AttendanceService. The whole window either
// derives completely or the request fails; an unknown employee aborts before
// any derivation runs.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	today := dateOf(time.Now())
	start := today.AddDate(0, 0, -a.historyDays)
	end := today.Add(24*time.Hour - time.Nanosecond)

	logs, err := a.AccessLogRepository.ListByEmployeeBetween(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for history: %w", err)
	}

	byDate := groupByDate(logs)

	// Most recent date first; per-date rows keep the deriver's emission order.
	var records []attendance.Record
	for date := today; !date.Before(start); date = date.AddDate(0, 0, -1) {
		records = append(records, a.deriver.DeriveDay(emp.FullName, date, byDate[date])...)
	}
	return records, nil
}

// Day implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Day(ctx context.Context, employeeID string, date time.Time) ([]attendance.Record, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	day := dateOf(date)
	logs, err := a.AccessLogRepository.ListByEmployeeBetween(ctx, employeeID, day, day.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to load events for day: %w", err)
	}

	return a.deriver.DeriveDay(emp.FullName, day, logs), nil
}

// groupByDate buckets events by calendar date, preserving store order
// within each bucket.
func groupByDate(logs []accesslog.AccessLog) map[time.Time][]accesslog.AccessLog {
	byDate := make(map[time.Time][]accesslog.AccessLog)
	for _, log := range logs {
		date := dateOf(log.AccessTime)
		byDate[date] = append(byDate[date], log)
	}
	return byDate
}
