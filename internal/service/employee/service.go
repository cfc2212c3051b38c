package employee

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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	accesspoint.AccessPointRepository
	accesslog.AccessLogRepository
	routing    employee.DepartmentRouting
	classifier *attendanceService.Classifier
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	accessPointRepo accesspoint.AccessPointRepository,
	accessLogRepo accesslog.AccessLogRepository,
	routing employee.DepartmentRouting,
	thresholds attendance.Thresholds,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                    db,
		EmployeeRepository:    employeeRepo,
		AccessPointRepository: accessPointRepo,
		AccessLogRepository:   accessLogRepo,
		routing:               routing,
		classifier:            attendanceService.NewClassifier(thresholds),
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	accessPointID, err := s.resolveAccessPoint(ctx, req.Department)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	codeExists, err := s.EmployeeRepository.CodeExists(ctx, req.EmployeeCode, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if codeExists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	emailExists, err := s.EmployeeRepository.EmailExists(ctx, req.Email, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	// Badge cards are provisioned externally; generate one when the request
	// doesn't carry it yet.
	memberCard := uuid.NewString()
	if req.MemberCard != nil {
		memberCard = *req.MemberCard
	}
	cardExists, err := s.EmployeeRepository.MemberCardExists(ctx, memberCard, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check member card: %w", err)
	}
	if cardExists {
		return employee.EmployeeResponse{}, employee.ErrMemberCardExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.RoleStaff
	if req.Role != nil {
		role = employee.Role(*req.Role)
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:      req.FullName,
		EmployeeCode:  req.EmployeeCode,
		MemberCard:    memberCard,
		Department:    req.Department,
		Role:          role,
		AccessPointID: &accessPointID,
		Email:         req.Email,
		Password:      string(hashed),
		Phone:         req.Phone,
		IsActive:      isActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService. The detail view carries recorded
// activity stats next to the employee card.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.DetailResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	totalAccess, err := s.AccessLogRepository.CountByEmployee(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, fmt.Errorf("failed to count accesses: %w", err)
	}

	checkIns, err := s.AccessLogRepository.FirstCheckInTimes(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, fmt.Errorf("failed to load check-in times: %w", err)
	}
	checkOuts, err := s.AccessLogRepository.LastCheckOutTimes(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, fmt.Errorf("failed to load check-out times: %w", err)
	}

	return employee.DetailResponse{
		Employee: employee.ToEmployeeResponse(emp),
		Stats: employee.Stats{
			TotalAccess: totalAccess,
			AvgCheckIn:  averageTimeOfDay(checkIns),
			AvgCheckOut: averageTimeOfDay(checkOuts),
		},
	}, nil
}

// GetByMemberCard implements employee.EmployeeService. Badge readers use it
// to resolve a scanned card before posting the event.
func (s *EmployeeServiceImpl) GetByMemberCard(ctx context.Context, memberCard string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByMemberCard(ctx, memberCard)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService. Every employee row is decorated
// with today's first check-in, last check-out and live check-in status for
// the staff board.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.BoardEntry, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	today := time.Now()
	entries := make([]employee.BoardEntry, 0, len(employees))
	for _, emp := range employees {
		checkIn, checkOut, err := s.AccessLogRepository.TodayBounds(ctx, emp.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to load today's bounds for %s: %w", emp.ID, err)
		}

		entry := employee.BoardEntry{
			EmployeeResponse: employee.ToEmployeeResponse(emp),
			TodayCheckIn:     attendance.NoDuration,
			TodayCheckOut:    attendance.NoDuration,
			CheckInStatus:    "Not checked in",
		}
		if checkIn != nil {
			entry.TodayCheckIn = checkIn.Format("15:04")
			entry.CheckInStatus = s.classifier.Classify(accesslog.EventCheckIn, *checkIn).String()
		}
		if checkOut != nil {
			entry.TodayCheckOut = checkOut.Format("15:04")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Update implements employee.EmployeeService. Only fields present in the
// request are touched; everything is validated before any mutation.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.EmployeeCode != nil {
		exists, err := s.EmployeeRepository.CodeExists(ctx, *req.EmployeeCode, id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		emp.EmployeeCode = *req.EmployeeCode
	}

	if req.MemberCard != nil {
		exists, err := s.EmployeeRepository.MemberCardExists(ctx, *req.MemberCard, id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check member card: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrMemberCardExists
		}
		emp.MemberCard = *req.MemberCard
	}

	if req.Email != nil {
		exists, err := s.EmployeeRepository.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}

	if req.Department != nil {
		accessPointID, err := s.resolveAccessPoint(ctx, *req.Department)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Department = *req.Department
		emp.AccessPointID = &accessPointID
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.Password = string(hashed)
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService. The employee's event history
// goes with them, in the same transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.AccessLogRepository.DeleteByEmployee(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete employee's access logs: %w", err)
		}
		if err := s.EmployeeRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

// resolveAccessPoint maps a department through the routing table to the
// access point its badges are provisioned for.
func (s *EmployeeServiceImpl) resolveAccessPoint(ctx context.Context, department string) (string, error) {
	code, err := s.routing.Resolve(department)
	if err != nil {
		return "", err
	}
	point, err := s.AccessPointRepository.GetByCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("department %s routes to access point %s: %w", department, code, err)
	}
	return point.ID, nil
}

// averageTimeOfDay renders the mean time-of-day of the given timestamps as
// "HH:mm", or "no data" when there are none.
func averageTimeOfDay(times []time.Time) string {
	if len(times) == 0 {
		return attendance.NoData
	}
	var total time.Duration
	for _, t := range times {
		h, m, s := t.Clock()
		total += time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	}
	avg := total / time.Duration(len(times))
	return fmt.Sprintf("%02d:%02d", int(avg.Hours()), int(avg.Minutes())%60)
}
