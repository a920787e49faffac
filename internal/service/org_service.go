package service

import (
	"context"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// OrgService manages the containment hierarchy above and below facilities:
// states, districts and departments.
type OrgService struct {
	states      repository.StateRepository
	districts   repository.DistrictRepository
	departments repository.DepartmentRepository
	facilities  repository.FacilityRepository
}

// OrgDependencies encapsulates the repositories required for hierarchy management.
type OrgDependencies struct {
	StateRepo      repository.StateRepository
	DistrictRepo   repository.DistrictRepository
	DepartmentRepo repository.DepartmentRepository
	FacilityRepo   repository.FacilityRepository
}

// NewOrgService builds the service.
func NewOrgService(deps OrgDependencies) *OrgService {
	return &OrgService{
		states:      deps.StateRepo,
		districts:   deps.DistrictRepo,
		departments: deps.DepartmentRepo,
		facilities:  deps.FacilityRepo,
	}
}

// CreateState registers a new state. SuperAdmin only.
func (s *OrgService) CreateState(ctx context.Context, actor *domain.User, name string) (*domain.State, error) {
	if err := auth.RequireRole(actor.Role, auth.StateCreators...); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	state := &domain.State{Name: name, IsActive: true}
	if err := s.states.Create(ctx, state); err != nil {
		return nil, apperrors.MapError(err)
	}
	return state, nil
}

// ListStates returns active, non-deleted states.
func (s *OrgService) ListStates(ctx context.Context) ([]domain.State, error) {
	states, err := s.states.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return states, nil
}

// GetStateByID fetches a state after the lifecycle gate.
func (s *OrgService) GetStateByID(ctx context.Context, id string) (*domain.State, error) {
	return loadGuarded(ctx, id, s.states.GetByID)
}

// UpdateState applies a partial update after the lifecycle gate.
func (s *OrgService) UpdateState(ctx context.Context, actor *domain.User, id string, upd domain.StateUpdate) (*domain.State, error) {
	if err := auth.RequireRole(actor.Role, auth.StateCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.states.GetByID); err != nil {
		return nil, err
	}
	state, err := s.states.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return state, nil
}

// SoftDeleteState flags the state as deleted. Districts keep their own flags.
func (s *OrgService) SoftDeleteState(ctx context.Context, actor *domain.User, id string) (*domain.State, error) {
	if err := auth.RequireRole(actor.Role, auth.StateCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.states.GetByID); err != nil {
		return nil, err
	}
	state, err := s.states.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return state, nil
}

// CreateDistrict registers a district under an active state.
func (s *OrgService) CreateDistrict(ctx context.Context, actor *domain.User, name, stateID string) (*domain.District, error) {
	if err := auth.RequireRole(actor.Role, auth.DistrictCreators...); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := loadGuarded(ctx, stateID, s.states.GetByID); err != nil {
		return nil, err
	}
	district := &domain.District{Name: name, StateID: stateID, IsActive: true}
	if err := s.districts.Create(ctx, district); err != nil {
		return nil, apperrors.MapError(err)
	}
	return district, nil
}

// ListDistricts returns active, non-deleted districts.
func (s *OrgService) ListDistricts(ctx context.Context) ([]domain.District, error) {
	districts, err := s.districts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return districts, nil
}

// ListDistrictsByState returns a state's active districts.
func (s *OrgService) ListDistrictsByState(ctx context.Context, stateID string) ([]domain.District, error) {
	if err := validateID(stateID); err != nil {
		return nil, err
	}
	districts, err := s.districts.ListByState(ctx, stateID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return districts, nil
}

// GetDistrictByID fetches a district after the lifecycle gate.
func (s *OrgService) GetDistrictByID(ctx context.Context, id string) (*domain.District, error) {
	return loadGuarded(ctx, id, s.districts.GetByID)
}

// UpdateDistrict applies a partial update after the lifecycle gate.
func (s *OrgService) UpdateDistrict(ctx context.Context, actor *domain.User, id string, upd domain.DistrictUpdate) (*domain.District, error) {
	if err := auth.RequireRole(actor.Role, auth.DistrictCreators...); err != nil {
		return nil, err
	}
	if upd.StateID != nil {
		if _, err := loadGuarded(ctx, *upd.StateID, s.states.GetByID); err != nil {
			return nil, err
		}
	}
	if _, err := loadGuarded(ctx, id, s.districts.GetByID); err != nil {
		return nil, err
	}
	district, err := s.districts.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return district, nil
}

// SoftDeleteDistrict flags the district as deleted. Facilities keep their own flags.
func (s *OrgService) SoftDeleteDistrict(ctx context.Context, actor *domain.User, id string) (*domain.District, error) {
	if err := auth.RequireRole(actor.Role, auth.DistrictCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.districts.GetByID); err != nil {
		return nil, err
	}
	district, err := s.districts.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return district, nil
}

// CreateDepartment registers a department under an active facility.
func (s *OrgService) CreateDepartment(ctx context.Context, actor *domain.User, name, facilityID string) (*domain.Department, error) {
	if err := auth.RequireRole(actor.Role, auth.DepartmentCreators...); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := loadGuarded(ctx, facilityID, s.facilities.GetByID); err != nil {
		return nil, err
	}
	dept := &domain.Department{Name: name, FacilityID: facilityID, IsActive: true}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// ListDepartments returns active, non-deleted departments.
func (s *OrgService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return departments, nil
}

// ListDepartmentsByFacility returns a facility's active departments.
func (s *OrgService) ListDepartmentsByFacility(ctx context.Context, facilityID string) ([]domain.Department, error) {
	if err := validateID(facilityID); err != nil {
		return nil, err
	}
	departments, err := s.departments.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return departments, nil
}

// GetDepartmentByID fetches a department after the lifecycle gate.
func (s *OrgService) GetDepartmentByID(ctx context.Context, id string) (*domain.Department, error) {
	return loadGuarded(ctx, id, s.departments.GetByID)
}

// UpdateDepartment applies a partial update after the lifecycle gate.
func (s *OrgService) UpdateDepartment(ctx context.Context, actor *domain.User, id string, upd domain.DepartmentUpdate) (*domain.Department, error) {
	if err := auth.RequireRole(actor.Role, auth.DepartmentCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.departments.GetByID); err != nil {
		return nil, err
	}
	dept, err := s.departments.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// SoftDeleteDepartment flags the department as deleted.
func (s *OrgService) SoftDeleteDepartment(ctx context.Context, actor *domain.User, id string) (*domain.Department, error) {
	if err := auth.RequireRole(actor.Role, auth.DepartmentCreators...); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, id, s.departments.GetByID); err != nil {
		return nil, err
	}
	dept, err := s.departments.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}
