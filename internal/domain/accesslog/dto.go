package accesslog

import (
	"time"

	"github.com/gatewise/access-backend-go/internal/pkg/validator"
)

// DeviceEventRequest is the payload posted by badge readers. AccessType may
// be empty when the access point is an alternating-type device; the service
// infers it from the employee's last event of the day.
type DeviceEventRequest struct {
	EmployeeID    string     `json:"employee_id"`
	AccessPointID string     `json:"access_point_id"`
	AccessType    EventType  `json:"access_type,omitempty"`
	AccessTime    *time.Time `json:"access_time,omitempty"`
	Note          *string    `json:"note,omitempty"`
}

func (r *DeviceEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.AccessPointID) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_point_id",
			Message: "access_point_id is required",
		})
	} else if !validator.IsValidUUID(r.AccessPointID) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_point_id",
			Message: "access_point_id must be a valid UUID",
		})
	}

	if r.AccessType != "" && !r.AccessType.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "access_type",
			Message: "access_type must be CheckIn or CheckOut",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEventRequest is the admin-entry payload. Unlike the device callback,
// every field including the event type and timestamp must be supplied.
type ManualEventRequest struct {
	EmployeeID    string     `json:"employee_id"`
	AccessPointID string     `json:"access_point_id"`
	AccessType    EventType  `json:"access_type"`
	AccessTime    *time.Time `json:"access_time"`
	Note          *string    `json:"note,omitempty"`
}

func (r *ManualEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.AccessPointID) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_point_id",
			Message: "access_point_id is required",
		})
	} else if !validator.IsValidUUID(r.AccessPointID) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_point_id",
			Message: "access_point_id must be a valid UUID",
		})
	}

	if !r.AccessType.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "access_type",
			Message: "access_type must be CheckIn or CheckOut",
		})
	}

	if r.AccessTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "access_time",
			Message: "access_time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the access log listing. AccessPoint matches the access
// point name and Employee matches the employee's name or code, both as
// case-insensitive substrings; Result is one dropdown value, compared
// exactly.
type ListFilter struct {
	AccessPoint string
	Employee    string
	FromDate    *time.Time
	ToDate      *time.Time
	Result      string
	Page        int
	Limit       int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
}

// FilterOptions feeds the history screen's filter dropdowns.
type FilterOptions struct {
	AccessPoints []string `json:"access_points"`
	Employees    []string `json:"employees"`
	Results      []string `json:"results"`
}

// EventResponse is returned after recording an event.
type EventResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	AccessType   EventType `json:"access_type"`
	AccessTime   string    `json:"access_time"`
	AccessResult Result    `json:"access_result"`
	AccessStatus string    `json:"access_status"`
	IsCheckIn    bool      `json:"is_check_in"`
}

// LogResponse is one row of the access log listing.
type LogResponse struct {
	ID              string  `json:"id"`
	EmployeeID      *string `json:"employee_id,omitempty"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	AccessPointID   *string `json:"access_point_id,omitempty"`
	AccessPointName *string `json:"access_point_name,omitempty"`
	AccessTime      string  `json:"access_time"`
	AccessType      string  `json:"access_type"`
	AccessResult    string  `json:"access_result"`
	AccessStatus    string  `json:"access_status"`
	Note            *string `json:"note,omitempty"`
}

// ToLogResponse maps an entity to its listing row.
func ToLogResponse(log AccessLog) LogResponse {
	return LogResponse{
		ID:              log.ID,
		EmployeeID:      log.EmployeeID,
		EmployeeName:    log.EmployeeName,
		EmployeeCode:    log.EmployeeCode,
		AccessPointID:   log.AccessPointID,
		AccessPointName: log.AccessPointName,
		AccessTime:      log.AccessTime.Format("2006-01-02 15:04:05"),
		AccessType:      string(log.AccessType),
		AccessResult:    string(log.AccessResult),
		AccessStatus:    log.AccessStatus,
		Note:            log.Note,
	}
}
