package accesspoint

import (
	"context"
	"fmt"

	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/domain/site"
)

type AccessPointServiceImpl struct {
	accesspoint.AccessPointRepository
	site.SiteRepository
}

func NewAccessPointService(
	accessPointRepo accesspoint.AccessPointRepository,
	siteRepo site.SiteRepository,
) accesspoint.AccessPointService {
	return &AccessPointServiceImpl{
		AccessPointRepository: accessPointRepo,
		SiteRepository:        siteRepo,
	}
}

// Create implements accesspoint.AccessPointService.
func (s *AccessPointServiceImpl) Create(ctx context.Context, req accesspoint.CreateAccessPointRequest) (accesspoint.AccessPointResponse, error) {
	if err := req.Validate(); err != nil {
		return accesspoint.AccessPointResponse{}, err
	}

	if req.SiteID != nil {
		if _, err := s.SiteRepository.GetByID(ctx, *req.SiteID); err != nil {
			return accesspoint.AccessPointResponse{}, err
		}
	}

	codeExists, err := s.AccessPointRepository.CodeExists(ctx, req.Code, "")
	if err != nil {
		return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to check access point code: %w", err)
	}
	if codeExists {
		return accesspoint.AccessPointResponse{}, accesspoint.ErrCodeExists
	}

	nameExists, err := s.AccessPointRepository.NameExists(ctx, req.AccessName, "")
	if err != nil {
		return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to check access point name: %w", err)
	}
	if nameExists {
		return accesspoint.AccessPointResponse{}, accesspoint.ErrNameExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.AccessPointRepository.Create(ctx, accesspoint.AccessPoint{
		AccessName: req.AccessName,
		Code:       req.Code,
		Location:   req.Location,
		SiteID:     req.SiteID,
		DeviceType: req.DeviceType,
		DeviceData: req.DeviceData,
		IsActive:   isActive,
	})
	if err != nil {
		return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to create access point: %w", err)
	}

	return accesspoint.ToAccessPointResponse(created), nil
}

// Get implements accesspoint.AccessPointService.
func (s *AccessPointServiceImpl) Get(ctx context.Context, id string) (accesspoint.AccessPointResponse, error) {
	point, err := s.AccessPointRepository.GetByID(ctx, id)
	if err != nil {
		return accesspoint.AccessPointResponse{}, err
	}
	return accesspoint.ToAccessPointResponse(point), nil
}

// GetByDevice implements accesspoint.AccessPointService. Devices identify
// themselves by their raw device data on callback registration.
func (s *AccessPointServiceImpl) GetByDevice(ctx context.Context, deviceData string) (accesspoint.AccessPointResponse, error) {
	point, err := s.AccessPointRepository.FindByDeviceData(ctx, deviceData)
	if err != nil {
		return accesspoint.AccessPointResponse{}, err
	}
	return accesspoint.ToAccessPointResponse(point), nil
}

// List implements accesspoint.AccessPointService.
func (s *AccessPointServiceImpl) List(ctx context.Context) ([]accesspoint.AccessPointResponse, error) {
	points, err := s.AccessPointRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list access points: %w", err)
	}

	responses := make([]accesspoint.AccessPointResponse, 0, len(points))
	for _, point := range points {
		responses = append(responses, accesspoint.ToAccessPointResponse(point))
	}
	return responses, nil
}

// Update implements accesspoint.AccessPointService. Partial update; note
// that flipping IsActive does not touch recorded events until the explicit
// recompute endpoint is invoked.
func (s *AccessPointServiceImpl) Update(ctx context.Context, id string, req accesspoint.UpdateAccessPointRequest) (accesspoint.AccessPointResponse, error) {
	if err := req.Validate(); err != nil {
		return accesspoint.AccessPointResponse{}, err
	}

	point, err := s.AccessPointRepository.GetByID(ctx, id)
	if err != nil {
		return accesspoint.AccessPointResponse{}, err
	}

	if req.Code != nil {
		exists, err := s.AccessPointRepository.CodeExists(ctx, *req.Code, id)
		if err != nil {
			return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to check access point code: %w", err)
		}
		if exists {
			return accesspoint.AccessPointResponse{}, accesspoint.ErrCodeExists
		}
		point.Code = *req.Code
	}

	if req.AccessName != nil {
		exists, err := s.AccessPointRepository.NameExists(ctx, *req.AccessName, id)
		if err != nil {
			return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to check access point name: %w", err)
		}
		if exists {
			return accesspoint.AccessPointResponse{}, accesspoint.ErrNameExists
		}
		point.AccessName = *req.AccessName
	}

	if req.SiteID != nil {
		if *req.SiteID == "" {
			point.SiteID = nil
		} else {
			if _, err := s.SiteRepository.GetByID(ctx, *req.SiteID); err != nil {
				return accesspoint.AccessPointResponse{}, err
			}
			point.SiteID = req.SiteID
		}
	}

	if req.Location != nil {
		point.Location = req.Location
	}
	if req.DeviceType != nil {
		point.DeviceType = req.DeviceType
	}
	if req.DeviceData != nil {
		point.DeviceData = req.DeviceData
	}
	if req.IsActive != nil {
		point.IsActive = *req.IsActive
	}

	if err := s.AccessPointRepository.Update(ctx, point); err != nil {
		return accesspoint.AccessPointResponse{}, fmt.Errorf("failed to update access point: %w", err)
	}

	return accesspoint.ToAccessPointResponse(point), nil
}

// Delete implements accesspoint.AccessPointService. Recorded events keep a
// null access point reference rather than disappearing.
func (s *AccessPointServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.AccessPointRepository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.AccessPointRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete access point: %w", err)
	}
	return nil
}
