package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accessLogRepository struct {
	db *database.DB
}

func NewAccessLogRepository(db *database.DB) accesslog.AccessLogRepository {
	return &accessLogRepository{db: db}
}

const accessLogColumns = `
	al.id, al.employee_id, al.access_point_id, al.access_time, al.access_type,
	al.access_result, al.access_status, al.note, al.created_at
`

func scanAccessLog(row pgx.Row) (accesslog.AccessLog, error) {
	var log accesslog.AccessLog
	err := row.Scan(
		&log.ID, &log.EmployeeID, &log.AccessPointID, &log.AccessTime, &log.AccessType,
		&log.AccessResult, &log.AccessStatus, &log.Note, &log.CreatedAt,
	)
	return log, err
}

// Create implements accesslog.AccessLogRepository.
func (r *accessLogRepository) Create(ctx context.Context, log accesslog.AccessLog) (accesslog.AccessLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_logs (employee_id, access_point_id, access_time, access_type, access_result, access_status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.EmployeeID,
		log.AccessPointID,
		log.AccessTime,
		log.AccessType,
		log.AccessResult,
		log.AccessStatus,
		log.Note,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return accesslog.AccessLog{}, fmt.Errorf("failed to create access log: %w", err)
	}
	return log, nil
}

// LastForEmployeeOnDate implements accesslog.AccessLogRepository.
func (r *accessLogRepository) LastForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (*accesslog.AccessLog, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT ` + accessLogColumns + `
		FROM access_logs al
		WHERE al.employee_id = $1 AND al.access_time >= $2 AND al.access_time < $3
		ORDER BY al.access_time DESC, al.created_at DESC
		LIMIT 1
	`

	log, err := scanAccessLog(q.QueryRow(ctx, query, employeeID, dayStart, dayEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last event of the day: %w", err)
	}
	return &log, nil
}

// ListByEmployeeBetween implements accesslog.AccessLogRepository.
func (r *accessLogRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]accesslog.AccessLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accessLogColumns + `
		FROM access_logs al
		WHERE al.employee_id = $1 AND al.access_time >= $2 AND al.access_time <= $3
		ORDER BY al.access_time, al.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee access logs: %w", err)
	}
	defer rows.Close()

	var logs []accesslog.AccessLog
	for rows.Next() {
		log, err := scanAccessLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// List implements accesslog.AccessLogRepository.
func (r *accessLogRepository) List(ctx context.Context, filter accesslog.ListFilter) ([]accesslog.AccessLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argn := 0

	addArg := func(clause string, value interface{}) {
		argn++
		args = append(args, value)
		where += fmt.Sprintf(clause, argn)
	}

	if filter.AccessPoint != "" {
		addArg(` AND ap.access_name ILIKE '%%' || $%d || '%%'`, filter.AccessPoint)
	}
	if filter.Employee != "" {
		addArg(` AND (e.full_name ILIKE '%%' || $%[1]d || '%%' OR e.employee_code ILIKE '%%' || $%[1]d || '%%')`, filter.Employee)
	}
	if filter.FromDate != nil {
		addArg(` AND al.access_time >= $%d`, *filter.FromDate)
	}
	if filter.ToDate != nil {
		addArg(` AND al.access_time <= $%d`, *filter.ToDate)
	}
	if filter.Result != "" {
		addArg(` AND al.access_result = $%d`, filter.Result)
	}

	from := `
		FROM access_logs al
		LEFT JOIN employees e ON e.id = al.employee_id
		LEFT JOIN access_points ap ON ap.id = al.access_point_id
	`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count access logs: %w", err)
	}

	query := `
		SELECT ` + accessLogColumns + `, e.full_name, e.employee_code, ap.access_name` +
		from + where +
		fmt.Sprintf(` ORDER BY al.access_time DESC, al.created_at DESC LIMIT $%d OFFSET $%d`, argn+1, argn+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list access logs: %w", err)
	}
	defer rows.Close()

	var logs []accesslog.AccessLog
	for rows.Next() {
		var log accesslog.AccessLog
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.AccessPointID, &log.AccessTime, &log.AccessType,
			&log.AccessResult, &log.AccessStatus, &log.Note, &log.CreatedAt,
			&log.EmployeeName, &log.EmployeeCode, &log.AccessPointName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan access log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, total, rows.Err()
}

// FilterOptions implements accesslog.AccessLogRepository.
func (r *accessLogRepository) FilterOptions(ctx context.Context) (accesslog.FilterOptions, error) {
	q := GetQuerier(ctx, r.db)

	opts := accesslog.FilterOptions{}

	collect := func(query string, dst *[]string) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dst = append(*dst, v)
		}
		return rows.Err()
	}

	if err := collect(`
		SELECT DISTINCT ap.access_name
		FROM access_logs al
		JOIN access_points ap ON ap.id = al.access_point_id
		ORDER BY ap.access_name
	`, &opts.AccessPoints); err != nil {
		return accesslog.FilterOptions{}, fmt.Errorf("failed to load access point options: %w", err)
	}

	if err := collect(`
		SELECT DISTINCT e.full_name
		FROM access_logs al
		JOIN employees e ON e.id = al.employee_id
		ORDER BY e.full_name
	`, &opts.Employees); err != nil {
		return accesslog.FilterOptions{}, fmt.Errorf("failed to load employee options: %w", err)
	}

	if err := collect(`
		SELECT DISTINCT access_result FROM access_logs ORDER BY access_result
	`, &opts.Results); err != nil {
		return accesslog.FilterOptions{}, fmt.Errorf("failed to load result options: %w", err)
	}

	return opts, nil
}

// ListWithAccessPointActive implements accesslog.AccessLogRepository.
func (r *accessLogRepository) ListWithAccessPointActive(ctx context.Context) ([]accesslog.RecomputeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accessLogColumns + `, COALESCE(ap.is_active, FALSE)
		FROM access_logs al
		LEFT JOIN access_points ap ON ap.id = al.access_point_id
		ORDER BY al.access_time, al.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs for recompute: %w", err)
	}
	defer rows.Close()

	var result []accesslog.RecomputeRow
	for rows.Next() {
		var row accesslog.RecomputeRow
		err := rows.Scan(
			&row.Log.ID, &row.Log.EmployeeID, &row.Log.AccessPointID, &row.Log.AccessTime, &row.Log.AccessType,
			&row.Log.AccessResult, &row.Log.AccessStatus, &row.Log.Note, &row.Log.CreatedAt,
			&row.AccessPointActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recompute row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UpdateResultStatus implements accesslog.AccessLogRepository.
func (r *accessLogRepository) UpdateResultStatus(ctx context.Context, id string, result accesslog.Result, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE access_logs SET access_result = $2, access_status = $3 WHERE id = $1`, id, result, status)
	if err != nil {
		return fmt.Errorf("failed to update access log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return accesslog.ErrLogNotFound
	}
	return nil
}

// DeleteByEmployee implements accesslog.AccessLogRepository.
func (r *accessLogRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM access_logs WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee access logs: %w", err)
	}
	return nil
}

// CountByEmployee implements accesslog.AccessLogRepository.
func (r *accessLogRepository) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM access_logs WHERE employee_id = $1`, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employee access logs: %w", err)
	}
	return count, nil
}

// FirstCheckInTimes implements accesslog.AccessLogRepository.
func (r *accessLogRepository) FirstCheckInTimes(ctx context.Context, employeeID string) ([]time.Time, error) {
	query := `
		SELECT MIN(access_time)
		FROM access_logs
		WHERE employee_id = $1 AND access_type = 'CheckIn'
		GROUP BY access_time::date
		ORDER BY access_time::date
	`
	return r.listTimes(ctx, query, employeeID)
}

// LastCheckOutTimes implements accesslog.AccessLogRepository.
func (r *accessLogRepository) LastCheckOutTimes(ctx context.Context, employeeID string) ([]time.Time, error) {
	query := `
		SELECT MAX(access_time)
		FROM access_logs
		WHERE employee_id = $1 AND access_type = 'CheckOut'
		GROUP BY access_time::date
		ORDER BY access_time::date
	`
	return r.listTimes(ctx, query, employeeID)
}

func (r *accessLogRepository) listTimes(ctx context.Context, query string, args ...interface{}) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan time: %w", err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// TodayBounds implements accesslog.AccessLogRepository.
func (r *accessLogRepository) TodayBounds(ctx context.Context, employeeID string, date time.Time) (*time.Time, *time.Time, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT
			MIN(access_time) FILTER (WHERE access_type = 'CheckIn'),
			MAX(access_time) FILTER (WHERE access_type = 'CheckOut')
		FROM access_logs
		WHERE employee_id = $1 AND access_time >= $2 AND access_time < $3
	`

	var checkIn, checkOut *time.Time
	if err := q.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(&checkIn, &checkOut); err != nil {
		return nil, nil, fmt.Errorf("failed to load today's bounds: %w", err)
	}
	return checkIn, checkOut, nil
}
