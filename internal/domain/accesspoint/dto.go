package accesspoint

import (
	"context"

	"github.com/gatewise/access-backend-go/internal/pkg/validator"
)

type CreateAccessPointRequest struct {
	AccessName string  `json:"access_name"`
	Code       string  `json:"code"`
	Location   *string `json:"location,omitempty"`
	SiteID     *string `json:"site_id,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	DeviceData *string `json:"device_data,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *CreateAccessPointRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AccessName) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_name",
			Message: "access_name is required",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidAccessPointCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 3-20 uppercase letters, digits or dashes",
		})
	}

	if r.SiteID != nil && !validator.IsValidUUID(*r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAccessPointRequest is a partial update; only non-nil fields apply.
type UpdateAccessPointRequest struct {
	AccessName *string `json:"access_name,omitempty"`
	Code       *string `json:"code,omitempty"`
	Location   *string `json:"location,omitempty"`
	SiteID     *string `json:"site_id,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	DeviceData *string `json:"device_data,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAccessPointRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AccessName != nil && validator.IsEmpty(*r.AccessName) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_name",
			Message: "access_name must not be empty",
		})
	}

	if r.Code != nil && !validator.IsValidAccessPointCode(*r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 3-20 uppercase letters, digits or dashes",
		})
	}

	if r.SiteID != nil && *r.SiteID != "" && !validator.IsValidUUID(*r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AccessPointResponse struct {
	ID         string  `json:"id"`
	AccessName string  `json:"access_name"`
	Code       string  `json:"code"`
	Location   *string `json:"location,omitempty"`
	SiteID     *string `json:"site_id,omitempty"`
	SiteName   *string `json:"site_name,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	DeviceData *string `json:"device_data,omitempty"`
	IsActive   bool    `json:"is_active"`
}

// ToAccessPointResponse maps an entity to its API shape.
func ToAccessPointResponse(p AccessPoint) AccessPointResponse {
	return AccessPointResponse{
		ID:         p.ID,
		AccessName: p.AccessName,
		Code:       p.Code,
		Location:   p.Location,
		SiteID:     p.SiteID,
		SiteName:   p.SiteName,
		DeviceType: p.DeviceType,
		DeviceData: p.DeviceData,
		IsActive:   p.IsActive,
	}
}

// AccessPointRepository defines data access for access points.
type AccessPointRepository interface {
	Create(ctx context.Context, point AccessPoint) (AccessPoint, error)
	GetByID(ctx context.Context, id string) (AccessPoint, error)
	GetByCode(ctx context.Context, code string) (AccessPoint, error)
	FindByDeviceData(ctx context.Context, deviceData string) (AccessPoint, error)
	List(ctx context.Context) ([]AccessPoint, error)
	ListBySite(ctx context.Context, siteID string) ([]AccessPoint, error)
	Update(ctx context.Context, point AccessPoint) error
	Delete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	NameExists(ctx context.Context, name string, excludeID string) (bool, error)
}

// AccessPointService covers the access point CRUD screens.
type AccessPointService interface {
	Create(ctx context.Context, req CreateAccessPointRequest) (AccessPointResponse, error)
	Get(ctx context.Context, id string) (AccessPointResponse, error)
	GetByDevice(ctx context.Context, deviceData string) (AccessPointResponse, error)
	List(ctx context.Context) ([]AccessPointResponse, error)
	Update(ctx context.Context, id string, req UpdateAccessPointRequest) (AccessPointResponse, error)
	Delete(ctx context.Context, id string) error
}
