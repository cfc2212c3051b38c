package site

import (
	"context"

	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	SiteName string  `json:"site_name"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteName) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_name",
			Message: "site_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSiteRequest is a partial update; only non-nil fields apply.
type UpdateSiteRequest struct {
	SiteName *string `json:"site_name,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SiteName != nil && validator.IsEmpty(*r.SiteName) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_name",
			Message: "site_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteResponse struct {
	ID           string                            `json:"id"`
	SiteName     string                            `json:"site_name"`
	Address      *string                           `json:"address,omitempty"`
	IsActive     bool                              `json:"is_active"`
	AccessPoints []accesspoint.AccessPointResponse `json:"access_points,omitempty"`
}

// ToSiteResponse maps an entity to its API shape.
func ToSiteResponse(s Site) SiteResponse {
	return SiteResponse{
		ID:       s.ID,
		SiteName: s.SiteName,
		Address:  s.Address,
		IsActive: s.IsActive,
	}
}

// SiteRepository defines data access for sites.
type SiteRepository interface {
	Create(ctx context.Context, site Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context) ([]Site, error)
	Update(ctx context.Context, site Site) error
	Delete(ctx context.Context, id string) error
	NameExists(ctx context.Context, name string, excludeID string) (bool, error)
}

// SiteService covers the building CRUD screens.
type SiteService interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	Get(ctx context.Context, id string) (SiteResponse, error)
	List(ctx context.Context) ([]SiteResponse, error)
	Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error
}
