package employee

import (
	"testing"

	"github.com/gatewise/access-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:     "Jane Doe",
		EmployeeCode: "EMP-001",
		Department:   "Engineering",
		Email:        "jane@example.com",
		Password:     "supersecret",
		Phone:        "081234567890",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestRejectsMissingFields(t *testing.T) {
	req := CreateEmployeeRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	for _, field := range []string{"full_name", "employee_code", "department", "email", "password", "phone"} {
		assert.Contains(t, details, field)
	}
}

func TestCreateEmployeeRequestRejectsBadRole(t *testing.T) {
	req := validCreateRequest()
	req.Role = strPtr("superuser")

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "role")
}

func TestCreateEmployeeRequestRejectsShortPassword(t *testing.T) {
	req := validCreateRequest()
	req.Password = "short"

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "password")
}

func TestUpdateEmployeeRequestEmptyIsValid(t *testing.T) {
	// Field-level validation only runs on fields that are present; an
	// all-nil update is caught separately by IsEmpty.
	req := UpdateEmployeeRequest{}
	assert.NoError(t, req.Validate())
	assert.True(t, req.IsEmpty())
}

func TestUpdateEmployeeRequestPartialFields(t *testing.T) {
	req := UpdateEmployeeRequest{
		FullName: strPtr("New Name"),
		Phone:    strPtr("089876543210"),
	}
	assert.NoError(t, req.Validate())
	assert.False(t, req.IsEmpty())
}

func TestUpdateEmployeeRequestRejectsClearedRequiredField(t *testing.T) {
	req := UpdateEmployeeRequest{FullName: strPtr("   ")}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "full_name")
}

func TestUpdateEmployeeRequestRejectsInvalidEmail(t *testing.T) {
	req := UpdateEmployeeRequest{Email: strPtr("not-an-email")}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "email")
}

func TestDepartmentRoutingResolve(t *testing.T) {
	routing := DepartmentRouting{
		"Engineering": "GATE-ENG",
		"Accounting":  "GATE-ACC",
	}

	code, err := routing.Resolve("Engineering")
	require.NoError(t, err)
	assert.Equal(t, "GATE-ENG", code)

	_, err = routing.Resolve("Catering")
	assert.ErrorIs(t, err, ErrUnknownDepartment)
	assert.ErrorContains(t, err, "Accounting, Engineering")
}

func TestDepartmentRoutingDepartmentsAreSorted(t *testing.T) {
	routing := DepartmentRouting{
		"Engineering": "GATE-ENG",
		"Accounting":  "GATE-ACC",
		"Security":    "GATE-SEC",
	}

	assert.Equal(t, []string{"Accounting", "Engineering", "Security"}, routing.Departments())
}
