package employee

import (
	"context"

	"github.com/gatewise/access-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name"`
	EmployeeCode string  `json:"employee_code"`
	MemberCard   *string `json:"member_card,omitempty"`
	Department   string  `json:"department"`
	Role         *string `json:"role,omitempty"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        string  `json:"phone"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid number",
		})
	}

	if r.Role != nil && *r.Role != string(RoleAdmin) && *r.Role != string(RoleStaff) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update: only non-nil fields are
// applied, and they are validated before anything is mutated.
type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	MemberCard   *string `json:"member_card,omitempty"`
	Department   *string `json:"department,omitempty"`
	Role         *string `json:"role,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.EmployeeCode != nil && validator.IsEmpty(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must not be empty",
		})
	}

	if r.MemberCard != nil && validator.IsEmpty(*r.MemberCard) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_card",
			Message: "member_card must not be empty",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid number",
		})
	}

	if r.Role != nil && *r.Role != string(RoleAdmin) && *r.Role != string(RoleStaff) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.FullName == nil && r.EmployeeCode == nil && r.MemberCard == nil &&
		r.Department == nil && r.Role == nil && r.Email == nil &&
		r.Password == nil && r.Phone == nil && r.IsActive == nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	EmployeeCode  string  `json:"employee_code"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	AccessPointID *string `json:"access_point_id,omitempty"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	IsActive      bool    `json:"is_active"`
	MemberCard    string  `json:"member_card"`
}

// BoardEntry decorates an employee with today's attendance snapshot for the
// staff overview screen.
type BoardEntry struct {
	EmployeeResponse
	TodayCheckIn  string `json:"today_check_in"`
	TodayCheckOut string `json:"today_check_out"`
	CheckInStatus string `json:"check_in_status"`
}

// Stats summarizes an employee's recorded activity.
type Stats struct {
	TotalAccess int64  `json:"total_access"`
	AvgCheckIn  string `json:"avg_check_in"`
	AvgCheckOut string `json:"avg_check_out"`
}

type DetailResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Stats    Stats            `json:"stats"`
}

// ToEmployeeResponse maps an entity to its API shape.
func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FullName:      e.FullName,
		EmployeeCode:  e.EmployeeCode,
		Department:    e.Department,
		Role:          string(e.Role),
		AccessPointID: e.AccessPointID,
		Email:         e.Email,
		Phone:         e.Phone,
		IsActive:      e.IsActive,
		MemberCard:    e.MemberCard,
	}
}

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByMemberCard(ctx context.Context, memberCard string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	MemberCardExists(ctx context.Context, memberCard string, excludeID string) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)
}

// EmployeeService covers the staff CRUD screens.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (DetailResponse, error)
	GetByMemberCard(ctx context.Context, memberCard string) (EmployeeResponse, error)
	List(ctx context.Context) ([]BoardEntry, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
