package site

import (
	"context"
	"fmt"

	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
	accesspoint.AccessPointRepository
}

func NewSiteService(
	siteRepo site.SiteRepository,
	accessPointRepo accesspoint.AccessPointRepository,
) site.SiteService {
	return &SiteServiceImpl{
		SiteRepository:        siteRepo,
		AccessPointRepository: accessPointRepo,
	}
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	exists, err := s.SiteRepository.NameExists(ctx, req.SiteName, "")
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to check site name: %w", err)
	}
	if exists {
		return site.SiteResponse{}, site.ErrSiteNameExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		SiteName: req.SiteName,
		Address:  req.Address,
		IsActive: isActive,
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return site.ToSiteResponse(created), nil
}

// Get implements site.SiteService. The detail view embeds the site's access
// points.
func (s *SiteServiceImpl) Get(ctx context.Context, id string) (site.SiteResponse, error) {
	found, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}

	points, err := s.AccessPointRepository.ListBySite(ctx, id)
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to list site access points: %w", err)
	}

	resp := site.ToSiteResponse(found)
	resp.AccessPoints = make([]accesspoint.AccessPointResponse, 0, len(points))
	for _, point := range points {
		resp.AccessPoints = append(resp.AccessPoints, accesspoint.ToAccessPointResponse(point))
	}
	return resp, nil
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.SiteRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, found := range sites {
		responses = append(responses, site.ToSiteResponse(found))
	}
	return responses, nil
}

// Update implements site.SiteService.
func (s *SiteServiceImpl) Update(ctx context.Context, id string, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	found, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if req.SiteName != nil {
		exists, err := s.SiteRepository.NameExists(ctx, *req.SiteName, id)
		if err != nil {
			return site.SiteResponse{}, fmt.Errorf("failed to check site name: %w", err)
		}
		if exists {
			return site.SiteResponse{}, site.ErrSiteNameExists
		}
		found.SiteName = *req.SiteName
	}
	if req.Address != nil {
		found.Address = req.Address
	}
	if req.IsActive != nil {
		found.IsActive = *req.IsActive
	}

	if err := s.SiteRepository.Update(ctx, found); err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to update site: %w", err)
	}

	return site.ToSiteResponse(found), nil
}

// Delete implements site.SiteService. A site cannot go while access points
// still reference it.
func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.SiteRepository.GetByID(ctx, id); err != nil {
		return err
	}

	points, err := s.AccessPointRepository.ListBySite(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list site access points: %w", err)
	}
	if len(points) > 0 {
		return site.ErrSiteHasAccessPoints
	}

	if err := s.SiteRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	return nil
}
