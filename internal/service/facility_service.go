package service

import (
	"context"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// FacilityService manages health facilities.
type FacilityService struct {
	facilities repository.FacilityRepository
	districts  repository.DistrictRepository
}

// NewFacilityService builds the service.
func NewFacilityService(facilities repository.FacilityRepository, districts repository.DistrictRepository) *FacilityService {
	return &FacilityService{facilities: facilities, districts: districts}
}

// CreateFacilityInput carries the fields for facility creation.
type CreateFacilityInput struct {
	Name       string
	Address    domain.Address
	Type       domain.FacilityType
	DistrictID *string
}

// Create registers a new facility. Only SuperAdmin, DistrictAdmin and
// FacilityAdmin may create facilities.
func (s *FacilityService) Create(ctx context.Context, actor *domain.User, in CreateFacilityInput) (*domain.Facility, error) {
	if err := auth.RequireRole(actor.Role, auth.FacilityCreators...); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if in.Address.State == "" || in.Address.City == "" || in.Address.Pincode == "" {
		return nil, apperrors.NewValidationError("address state, city and pincode are required", nil)
	}
	if !in.Type.Valid() {
		return nil, apperrors.NewValidationError("unknown facility type", map[string]any{"type": in.Type})
	}
	if in.DistrictID != nil {
		if _, err := loadGuarded(ctx, *in.DistrictID, s.districts.GetByID); err != nil {
			return nil, err
		}
	}

	facility := &domain.Facility{
		Name:       in.Name,
		Address:    in.Address,
		Type:       in.Type,
		DistrictID: in.DistrictID,
		IsActive:   true,
	}
	if err := s.facilities.Create(ctx, facility); err != nil {
		return nil, apperrors.MapError(err)
	}
	return facility, nil
}

// List returns active, non-deleted facilities.
func (s *FacilityService) List(ctx context.Context) ([]domain.Facility, error) {
	facilities, err := s.facilities.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return facilities, nil
}

// ListByDistrict returns a district's active facilities.
func (s *FacilityService) ListByDistrict(ctx context.Context, districtID string) ([]domain.Facility, error) {
	if err := validateID(districtID); err != nil {
		return nil, err
	}
	facilities, err := s.facilities.ListByDistrict(ctx, districtID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return facilities, nil
}

// GetByID fetches a facility after the lifecycle gate.
func (s *FacilityService) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	return loadGuarded(ctx, id, s.facilities.GetByID)
}

// Update applies a partial update after the lifecycle gate.
func (s *FacilityService) Update(ctx context.Context, actor *domain.User, id string, upd domain.FacilityUpdate) (*domain.Facility, error) {
	if err := auth.RequireRole(actor.Role, auth.FacilityCreators...); err != nil {
		return nil, err
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, apperrors.NewValidationError("unknown facility type", map[string]any{"type": *upd.Type})
	}
	if _, err := loadGuarded(ctx, id, s.facilities.GetByID); err != nil {
		return nil, err
	}
	facility, err := s.facilities.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return facility, nil
}

// SoftDelete flags the facility as deleted after the lifecycle gate.
// Departments of a deleted facility keep their own flags.
func (s *FacilityService) SoftDelete(ctx context.Context, actor *domain.User, id string) (*domain.Facility, error) {
	if err := auth.RequireRole(actor.Role, auth.FacilityCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.facilities.GetByID); err != nil {
		return nil, err
	}
	facility, err := s.facilities.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return facility, nil
}
