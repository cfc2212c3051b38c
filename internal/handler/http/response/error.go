package response

import (
	"errors"
	"net/http"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/domain/auth"
	"github.com/gatewise/access-backend-go/internal/domain/employee"
	"github.com/gatewise/access-backend-go/internal/domain/site"
	"github.com/gatewise/access-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrMemberCardExists):
		Conflict(w, "Member card already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrUnknownDepartment):
		BadRequest(w, "Unknown department", nil)

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteNameExists):
		Conflict(w, "Site name already exists")
	case errors.Is(err, site.ErrSiteHasAccessPoints):
		Conflict(w, "Site still has access points")

	// Access point domain errors
	case errors.Is(err, accesspoint.ErrAccessPointNotFound):
		NotFound(w, "Access point not found")
	case errors.Is(err, accesspoint.ErrCodeExists):
		Conflict(w, "Access point code already exists")
	case errors.Is(err, accesspoint.ErrNameExists):
		Conflict(w, "Access point name already exists")

	// Access log domain errors
	case errors.Is(err, accesslog.ErrNoLogsFound):
		NotFound(w, "No access logs found")
	case errors.Is(err, accesslog.ErrLogNotFound):
		NotFound(w, "Access log not found")
	case errors.Is(err, accesslog.ErrMissingEventType):
		BadRequest(w, "access_type is required for this access point", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
