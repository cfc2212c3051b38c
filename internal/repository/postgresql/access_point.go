package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accessPointRepository struct {
	db *database.DB
}

func NewAccessPointRepository(db *database.DB) accesspoint.AccessPointRepository {
	return &accessPointRepository{db: db}
}

const accessPointColumns = `
	ap.id, ap.access_name, ap.code, ap.location, ap.site_id,
	ap.device_type, ap.device_data, ap.is_active, ap.created_at, ap.updated_at,
	s.site_name
`

const accessPointFrom = `
	FROM access_points ap
	LEFT JOIN sites s ON s.id = ap.site_id
`

func scanAccessPoint(row pgx.Row) (accesspoint.AccessPoint, error) {
	var p accesspoint.AccessPoint
	err := row.Scan(
		&p.ID, &p.AccessName, &p.Code, &p.Location, &p.SiteID,
		&p.DeviceType, &p.DeviceData, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.SiteName,
	)
	return p, err
}

// Create implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) Create(ctx context.Context, p accesspoint.AccessPoint) (accesspoint.AccessPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_points (access_name, code, location, site_id, device_type, device_data, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.AccessName, p.Code, p.Location, p.SiteID, p.DeviceType, p.DeviceData, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return accesspoint.AccessPoint{}, fmt.Errorf("failed to create access point: %w", err)
	}
	return p, nil
}

// GetByID implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) GetByID(ctx context.Context, id string) (accesspoint.AccessPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accessPointColumns + accessPointFrom + ` WHERE ap.id = $1`

	p, err := scanAccessPoint(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accesspoint.AccessPoint{}, accesspoint.ErrAccessPointNotFound
		}
		return accesspoint.AccessPoint{}, fmt.Errorf("failed to get access point by id: %w", err)
	}
	return p, nil
}

// GetByCode implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) GetByCode(ctx context.Context, code string) (accesspoint.AccessPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accessPointColumns + accessPointFrom + ` WHERE ap.code = $1`

	p, err := scanAccessPoint(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accesspoint.AccessPoint{}, accesspoint.ErrAccessPointNotFound
		}
		return accesspoint.AccessPoint{}, fmt.Errorf("failed to get access point by code: %w", err)
	}
	return p, nil
}

// FindByDeviceData implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) FindByDeviceData(ctx context.Context, deviceData string) (accesspoint.AccessPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accessPointColumns + accessPointFrom + `
		WHERE ap.device_data IS NOT NULL AND LOWER(ap.device_data) LIKE LOWER('%' || $1 || '%')
		ORDER BY ap.created_at
		LIMIT 1`

	p, err := scanAccessPoint(q.QueryRow(ctx, query, deviceData))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accesspoint.AccessPoint{}, accesspoint.ErrAccessPointNotFound
		}
		return accesspoint.AccessPoint{}, fmt.Errorf("failed to find access point by device data: %w", err)
	}
	return p, nil
}

// List implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) List(ctx context.Context) ([]accesspoint.AccessPoint, error) {
	return r.list(ctx, `SELECT `+accessPointColumns+accessPointFrom+` ORDER BY ap.access_name`)
}

// ListBySite implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) ListBySite(ctx context.Context, siteID string) ([]accesspoint.AccessPoint, error) {
	return r.list(ctx, `SELECT `+accessPointColumns+accessPointFrom+` WHERE ap.site_id = $1 ORDER BY ap.access_name`, siteID)
}

func (r *accessPointRepository) list(ctx context.Context, query string, args ...interface{}) ([]accesspoint.AccessPoint, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list access points: %w", err)
	}
	defer rows.Close()

	var points []accesspoint.AccessPoint
	for rows.Next() {
		p, err := scanAccessPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Update implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) Update(ctx context.Context, p accesspoint.AccessPoint) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE access_points
		SET access_name = $2, code = $3, location = $4, site_id = $5,
			device_type = $6, device_data = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.AccessName, p.Code, p.Location, p.SiteID, p.DeviceType, p.DeviceData, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update access point: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return accesspoint.ErrAccessPointNotFound
	}
	return nil
}

// Delete implements accesspoint.AccessPointRepository. Recorded events keep
// their rows; the foreign key nulls out on delete.
func (r *accessPointRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM access_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete access point: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return accesspoint.ErrAccessPointNotFound
	}
	return nil
}

// CodeExists implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM access_points WHERE code = $1 AND ($2 = '' OR id::text <> $2))`, code, excludeID)
}

// NameExists implements accesspoint.AccessPointRepository.
func (r *accessPointRepository) NameExists(ctx context.Context, name string, excludeID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM access_points WHERE access_name = $1 AND ($2 = '' OR id::text <> $2))`, name, excludeID)
}

func (r *accessPointRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}
