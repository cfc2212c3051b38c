package accesslog

import (
	"context"
	"fmt"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/domain/employee"
	"github.com/gatewise/access-backend-go/internal/pkg/database"
	"github.com/gatewise/access-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gatewise/access-backend-go/internal/service/attendance"
	"github.com/jackc/pgx/v5"
)

type AccessLogServiceImpl struct {
	db *database.DB
	accesslog.AccessLogRepository
	employee.EmployeeRepository
	accesspoint.AccessPointRepository
	classifier *attendanceService.Classifier
}

func NewAccessLogService(
	db *database.DB,
	accessLogRepo accesslog.AccessLogRepository,
	employeeRepo employee.EmployeeRepository,
	accessPointRepo accesspoint.AccessPointRepository,
	thresholds attendance.Thresholds,
) accesslog.AccessLogService {
	return &AccessLogServiceImpl{
		db:                    db,
		AccessLogRepository:   accessLogRepo,
		EmployeeRepository:    employeeRepo,
		AccessPointRepository: accessPointRepo,
		classifier:            attendanceService.NewClassifier(thresholds),
	}
}

// RecordDeviceEvent implements accesslog.AccessLogService. Validation and
// both lookups run before any classification; a failed lookup rejects the
// event without writing anything.
func (s *AccessLogServiceImpl) RecordDeviceEvent(ctx context.Context, req accesslog.DeviceEventRequest) (accesslog.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return accesslog.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return accesslog.EventResponse{}, err
	}

	point, err := s.AccessPointRepository.GetByID(ctx, req.AccessPointID)
	if err != nil {
		return accesslog.EventResponse{}, err
	}

	accessTime := time.Now()
	if req.AccessTime != nil {
		accessTime = req.AccessTime.Local()
	}

	eventType := req.AccessType
	if point.InfersEventType() {
		lastToday, err := s.AccessLogRepository.LastForEmployeeOnDate(ctx, emp.ID, accessTime)
		if err != nil {
			return accesslog.EventResponse{}, fmt.Errorf("failed to look up last event of the day: %w", err)
		}
		eventType = s.classifier.InferType(lastToday)
	} else if !eventType.IsValid() {
		return accesslog.EventResponse{}, accesslog.ErrMissingEventType
	}

	return s.persistEvent(ctx, emp, point, eventType, accessTime, req.Note)
}

// RecordManualEvent implements accesslog.AccessLogService.
func (s *AccessLogServiceImpl) RecordManualEvent(ctx context.Context, req accesslog.ManualEventRequest) (accesslog.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return accesslog.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return accesslog.EventResponse{}, err
	}

	point, err := s.AccessPointRepository.GetByID(ctx, req.AccessPointID)
	if err != nil {
		return accesslog.EventResponse{}, err
	}

	return s.persistEvent(ctx, emp, point, req.AccessType, req.AccessTime.Local(), req.Note)
}

func (s *AccessLogServiceImpl) persistEvent(
	ctx context.Context,
	emp employee.Employee,
	point accesspoint.AccessPoint,
	eventType accesslog.EventType,
	accessTime time.Time,
	note *string,
) (accesslog.EventResponse, error) {
	result := accesslog.ResultFailure
	if point.IsActive {
		result = accesslog.ResultSuccess
	}

	status := s.classifier.Classify(eventType, accessTime)

	log := accesslog.AccessLog{
		EmployeeID:    &emp.ID,
		AccessPointID: &point.ID,
		AccessTime:    accessTime,
		AccessType:    eventType,
		AccessResult:  result,
		AccessStatus:  status.String(),
		Note:          note,
	}

	saved, err := s.AccessLogRepository.Create(ctx, log)
	if err != nil {
		return accesslog.EventResponse{}, fmt.Errorf("failed to save access log: %w", err)
	}

	return accesslog.EventResponse{
		ID:           saved.ID,
		EmployeeID:   emp.ID,
		AccessType:   eventType,
		AccessTime:   accessTime.Format("2006-01-02 15:04:05"),
		AccessResult: result,
		AccessStatus: status.String(),
		IsCheckIn:    eventType == accesslog.EventCheckIn,
	}, nil
}

// List implements accesslog.AccessLogService.
func (s *AccessLogServiceImpl) List(ctx context.Context, filter accesslog.ListFilter) ([]accesslog.LogResponse, int64, error) {
	filter.Normalize()

	logs, total, err := s.AccessLogRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list access logs: %w", err)
	}
	if total == 0 {
		return nil, 0, accesslog.ErrNoLogsFound
	}

	responses := make([]accesslog.LogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, accesslog.ToLogResponse(log))
	}
	return responses, total, nil
}

// FilterOptions implements accesslog.AccessLogService.
func (s *AccessLogServiceImpl) FilterOptions(ctx context.Context) (accesslog.FilterOptions, error) {
	options, err := s.AccessLogRepository.FilterOptions(ctx)
	if err != nil {
		return accesslog.FilterOptions{}, fmt.Errorf("failed to load filter options: %w", err)
	}
	return options, nil
}

// RecomputeStatuses implements accesslog.AccessLogService. The rewrite
// re-freezes each event's result from its access point's current active
// flag and re-runs the time rule on the stored type and timestamp. The
// whole batch commits or rolls back as one transaction.
func (s *AccessLogServiceImpl) RecomputeStatuses(ctx context.Context) (int, error) {
	rows, err := s.AccessLogRepository.ListWithAccessPointActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load events for recompute: %w", err)
	}

	updated := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, row := range rows {
			result := accesslog.ResultFailure
			if row.AccessPointActive {
				result = accesslog.ResultSuccess
			}
			status := s.classifier.Classify(row.Log.AccessType, row.Log.AccessTime)

			if result == row.Log.AccessResult && status.String() == row.Log.AccessStatus {
				continue
			}
			if err := s.AccessLogRepository.UpdateResultStatus(txCtx, row.Log.ID, result, status.String()); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to recompute access log statuses: %w", err)
	}

	return updated, nil
}
