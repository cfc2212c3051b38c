package postgresql

import (
	"context"
	"fmt"

	"github.com/gatewise/access-backend-go/internal/domain/dashboard"
	"github.com/gatewise/access-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// Counts implements dashboard.DashboardRepository.
func (r *dashboardRepository) Counts(ctx context.Context) (int64, int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM sites WHERE is_active),
			(SELECT COUNT(*) FROM access_points WHERE is_active)
	`

	var employees, sites, accessPoints int64
	if err := q.QueryRow(ctx, query).Scan(&employees, &sites, &accessPoints); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to load entity counts: %w", err)
	}
	return employees, sites, accessPoints, nil
}

// TodayEventCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) TodayEventCounts(ctx context.Context) (int64, int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE access_result = 'Success'),
			COUNT(*) FILTER (WHERE access_result = 'Failure')
		FROM access_logs
		WHERE access_time >= CURRENT_DATE AND access_time < CURRENT_DATE + 1
	`

	var total, successful, failed int64
	if err := q.QueryRow(ctx, query).Scan(&total, &successful, &failed); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to load today's event counts: %w", err)
	}
	return total, successful, failed, nil
}

// RecentTodayEvents implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentTodayEvents(ctx context.Context, page, pageSize int) ([]dashboard.EventRow, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM access_logs
		WHERE access_time >= CURRENT_DATE AND access_time < CURRENT_DATE + 1
	`
	if err := q.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count today's events: %w", err)
	}

	query := `
		SELECT
			COALESCE(e.full_name, ''),
			COALESCE(ap.access_name, ''),
			al.access_time,
			al.access_type,
			al.access_result,
			al.access_status,
			EXISTS (
				SELECT 1 FROM access_logs prior
				WHERE prior.employee_id = al.employee_id
					AND prior.access_type = 'CheckIn'
					AND prior.access_time >= CURRENT_DATE
					AND prior.access_time < al.access_time
			)
		FROM access_logs al
		LEFT JOIN employees e ON e.id = al.employee_id
		LEFT JOIN access_points ap ON ap.id = al.access_point_id
		WHERE al.access_time >= CURRENT_DATE AND al.access_time < CURRENT_DATE + 1
		ORDER BY al.access_time DESC, al.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load today's events: %w", err)
	}
	defer rows.Close()

	var events []dashboard.EventRow
	for rows.Next() {
		var row dashboard.EventRow
		err := rows.Scan(
			&row.EmployeeName,
			&row.AccessPointName,
			&row.AccessTime,
			&row.AccessType,
			&row.AccessResult,
			&row.AccessStatus,
			&row.HasEarlierCheckIn,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, row)
	}
	return events, total, rows.Err()
}
