package accesslog

import (
	"context"
	"time"
)

// AccessLogRepository defines data access for the append-only event log.
// Reads always come back ordered by access_time so the derivation layer
// never has to sort.
type AccessLogRepository interface {
	// Create appends a new event
	Create(ctx context.Context, log AccessLog) (AccessLog, error)

	// LastForEmployeeOnDate returns the employee's most recent event on the
	// given calendar date, or nil when there is none. Used to infer the
	// event type for alternating devices.
	LastForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (*AccessLog, error)

	// ListByEmployeeBetween returns the employee's events with access_time
	// in [from, to], ascending.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]AccessLog, error)

	// List returns a filtered, paginated page plus the total row count,
	// newest first, with employee and access point names joined in.
	List(ctx context.Context, filter ListFilter) ([]AccessLog, int64, error)

	// FilterOptions returns the distinct values the listing can filter on.
	FilterOptions(ctx context.Context) (FilterOptions, error)

	// ListWithAccessPointActive returns every event together with its access
	// point's current active flag. Feeds the bulk recompute.
	ListWithAccessPointActive(ctx context.Context) ([]RecomputeRow, error)

	// UpdateResultStatus rewrites the frozen result/status of one event.
	UpdateResultStatus(ctx context.Context, id string, result Result, status string) error

	// DeleteByEmployee removes all of an employee's events. Runs inside the
	// employee-delete transaction.
	DeleteByEmployee(ctx context.Context, employeeID string) error

	// CountByEmployee returns the employee's total recorded events.
	CountByEmployee(ctx context.Context, employeeID string) (int64, error)

	// FirstCheckInTimes returns, for each day with activity, the time of the
	// employee's first check-in.
	FirstCheckInTimes(ctx context.Context, employeeID string) ([]time.Time, error)

	// LastCheckOutTimes returns, for each day with activity, the time of the
	// employee's last check-out.
	LastCheckOutTimes(ctx context.Context, employeeID string) ([]time.Time, error)

	// TodayBounds returns the employee's first check-in and last check-out
	// on the given date; either may be nil.
	TodayBounds(ctx context.Context, employeeID string, date time.Time) (checkIn *time.Time, checkOut *time.Time, err error)
}

// RecomputeRow pairs an event with the current activity of its access
// point for the administrative result/status rewrite.
type RecomputeRow struct {
	Log               AccessLog
	AccessPointActive bool
}

// AccessLogService records incoming events and serves the history screens.
type AccessLogService interface {
	RecordDeviceEvent(ctx context.Context, req DeviceEventRequest) (EventResponse, error)
	RecordManualEvent(ctx context.Context, req ManualEventRequest) (EventResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LogResponse, int64, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)
	RecomputeStatuses(ctx context.Context) (int, error)
}
