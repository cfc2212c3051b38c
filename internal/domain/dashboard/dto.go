package dashboard

import (
	"context"
	"time"
)

// RecentEvent is one row of the dashboard's live feed. CheckInStatus is
// computed at read time; unlike the stored AccessStatus it accounts for
// earlier same-day check-ins (re-entry).
type RecentEvent struct {
	EmployeeName    string `json:"employee_name"`
	AccessPointName string `json:"access_point_name"`
	AccessTime      string `json:"access_time"`
	AccessResult    string `json:"access_result"`
	AccessStatus    string `json:"access_status"`
	CheckInStatus   string `json:"check_in_status"`
}

type RecentEventsPage struct {
	Data       []RecentEvent `json:"data"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

type Statistics struct {
	EmployeeCount         int64            `json:"employee_count"`
	SiteCount             int64            `json:"site_count"`
	AccessPointCount      int64            `json:"access_point_count"`
	AccessTodayCount      int64            `json:"access_today_count"`
	SuccessfulAccessCount int64            `json:"successful_access_count"`
	FailedAccessCount     int64            `json:"failed_access_count"`
	RecentAccessLogs      RecentEventsPage `json:"recent_access_logs"`
}

// EventRow is what the repository returns for the live feed before the
// service attaches the derived check-in status.
type EventRow struct {
	EmployeeName      string
	AccessPointName   string
	AccessTime        time.Time
	AccessType        string
	AccessResult      string
	AccessStatus      string
	HasEarlierCheckIn bool
}

// DashboardRepository aggregates counters for the admin landing page.
type DashboardRepository interface {
	Counts(ctx context.Context) (employees, activeSites, activeAccessPoints int64, err error)
	TodayEventCounts(ctx context.Context) (total, successful, failed int64, err error)
	RecentTodayEvents(ctx context.Context, page, pageSize int) ([]EventRow, int64, error)
}

// DashboardService serves the statistics endpoint.
type DashboardService interface {
	Statistics(ctx context.Context, page, pageSize int) (Statistics, error)
}
