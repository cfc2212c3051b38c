package dashboard

import (
	"context"
	"fmt"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/domain/dashboard"
	attendanceService "github.com/gatewise/access-backend-go/internal/service/attendance"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	classifier *attendanceService.Classifier
}

func NewDashboardService(repo dashboard.DashboardRepository, thresholds attendance.Thresholds) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		classifier:          attendanceService.NewClassifier(thresholds),
	}
}

// Statistics implements dashboard.DashboardService. The live feed column is
// derived at read time: a check-in with an earlier same-day check-in shows
// as re-entry instead of its stored label.
func (s *DashboardServiceImpl) Statistics(ctx context.Context, page, pageSize int) (dashboard.Statistics, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	employees, sites, accessPoints, err := s.DashboardRepository.Counts(ctx)
	if err != nil {
		return dashboard.Statistics{}, fmt.Errorf("failed to load entity counts: %w", err)
	}

	total, successful, failed, err := s.DashboardRepository.TodayEventCounts(ctx)
	if err != nil {
		return dashboard.Statistics{}, fmt.Errorf("failed to load today's event counts: %w", err)
	}

	rows, totalRows, err := s.DashboardRepository.RecentTodayEvents(ctx, page, pageSize)
	if err != nil {
		return dashboard.Statistics{}, fmt.Errorf("failed to load recent events: %w", err)
	}

	recent := make([]dashboard.RecentEvent, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, dashboard.RecentEvent{
			EmployeeName:    row.EmployeeName,
			AccessPointName: row.AccessPointName,
			AccessTime:      row.AccessTime.Format("15:04:05 02/01/2006"),
			AccessResult:    row.AccessResult,
			AccessStatus:    row.AccessStatus,
			CheckInStatus:   s.liveStatus(row),
		})
	}

	return dashboard.Statistics{
		EmployeeCount:         employees,
		SiteCount:             sites,
		AccessPointCount:      accessPoints,
		AccessTodayCount:      total,
		SuccessfulAccessCount: successful,
		FailedAccessCount:     failed,
		RecentAccessLogs: dashboard.RecentEventsPage{
			Data:       recent,
			TotalCount: totalRows,
			Page:       page,
			PageSize:   pageSize,
		},
	}, nil
}

func (s *DashboardServiceImpl) liveStatus(row dashboard.EventRow) string {
	switch accesslog.EventType(row.AccessType) {
	case accesslog.EventCheckIn:
		if row.HasEarlierCheckIn {
			return attendance.StatusReentered.String()
		}
		return s.classifier.Classify(accesslog.EventCheckIn, row.AccessTime).String()
	case accesslog.EventCheckOut:
		return s.classifier.Classify(accesslog.EventCheckOut, row.AccessTime).String()
	}
	return row.AccessStatus
}
