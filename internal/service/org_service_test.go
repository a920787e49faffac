package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
)

type orgFixture struct {
	svc         *OrgService
	states      *repository.MemoryStateRepository
	districts   *repository.MemoryDistrictRepository
	departments *repository.MemoryDepartmentRepository
	facilities  *repository.MemoryFacilityRepository
}

func newOrgFixture(t *testing.T) *orgFixture {
	t.Helper()
	f := &orgFixture{
		states:      repository.NewMemoryStateRepository(),
		districts:   repository.NewMemoryDistrictRepository(),
		departments: repository.NewMemoryDepartmentRepository(),
		facilities:  repository.NewMemoryFacilityRepository(),
	}
	f.svc = NewOrgService(OrgDependencies{
		StateRepo:      f.states,
		DistrictRepo:   f.districts,
		DepartmentRepo: f.departments,
		FacilityRepo:   f.facilities,
	})
	return f
}

func actorWithRole(role domain.Role) *domain.User {
	return &domain.User{ID: uuid.NewString(), Role: role, IsActive: true}
}

func TestCreateStateSuperAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)

	state, err := f.svc.CreateState(ctx, actorWithRole(domain.RoleSuperAdmin), "Westland")
	require.NoError(t, err)
	require.True(t, state.IsActive)

	_, err = f.svc.CreateState(ctx, actorWithRole(domain.RoleDistrictAdmin), "Eastland")
	requireCode(t, err, "FORBIDDEN")

	_, err = f.svc.CreateState(ctx, actorWithRole(domain.RoleSuperAdmin), "")
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestCreateDistrictRequiresActiveState(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)
	admin := actorWithRole(domain.RoleSuperAdmin)

	state, err := f.svc.CreateState(ctx, admin, "Westland")
	require.NoError(t, err)

	district, err := f.svc.CreateDistrict(ctx, actorWithRole(domain.RoleDistrictAdmin), "North", state.ID)
	require.NoError(t, err)
	require.Equal(t, state.ID, district.StateID)

	_, err = f.svc.SoftDeleteState(ctx, admin, state.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateDistrict(ctx, admin, "South", state.ID)
	requireCode(t, err, "FORBIDDEN")

	_, err = f.svc.CreateDistrict(ctx, admin, "South", uuid.NewString())
	requireCode(t, err, "NOT_FOUND")

	_, err = f.svc.CreateDistrict(ctx, actorWithRole(domain.RoleFacilityAdmin), "South", state.ID)
	requireCode(t, err, "FORBIDDEN")
}

func TestCreateDepartmentRequiresActiveFacility(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)
	admin := actorWithRole(domain.RoleFacilityAdmin)
	facility := seedFacility(t, f.facilities)

	dept, err := f.svc.CreateDepartment(ctx, admin, "Cardiology", facility.ID)
	require.NoError(t, err)
	require.Equal(t, facility.ID, dept.FacilityID)

	_, err = f.facilities.SoftDelete(ctx, facility.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateDepartment(ctx, admin, "Radiology", facility.ID)
	requireCode(t, err, "FORBIDDEN")

	_, err = f.svc.CreateDepartment(ctx, actorWithRole(domain.RoleDepartmentUser), "Radiology", facility.ID)
	requireCode(t, err, "FORBIDDEN")
}

func TestDeleteStateLeavesDistrictsIntact(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)
	admin := actorWithRole(domain.RoleSuperAdmin)

	state, err := f.svc.CreateState(ctx, admin, "Westland")
	require.NoError(t, err)
	district, err := f.svc.CreateDistrict(ctx, admin, "North", state.ID)
	require.NoError(t, err)

	_, err = f.svc.SoftDeleteState(ctx, admin, state.ID)
	require.NoError(t, err)

	// soft delete does not cascade
	got, err := f.svc.GetDistrictByID(ctx, district.ID)
	require.NoError(t, err)
	require.False(t, got.IsDeleted)
}

func TestListDistrictsByState(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)
	admin := actorWithRole(domain.RoleSuperAdmin)

	stateA, err := f.svc.CreateState(ctx, admin, "Westland")
	require.NoError(t, err)
	stateB, err := f.svc.CreateState(ctx, admin, "Eastland")
	require.NoError(t, err)

	north, err := f.svc.CreateDistrict(ctx, admin, "North", stateA.ID)
	require.NoError(t, err)
	_, err = f.svc.CreateDistrict(ctx, admin, "South", stateB.ID)
	require.NoError(t, err)

	listed, err := f.svc.ListDistrictsByState(ctx, stateA.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, north.ID, listed[0].ID)
}

func TestUpdateDistrictGuardsNewState(t *testing.T) {
	ctx := context.Background()
	f := newOrgFixture(t)
	admin := actorWithRole(domain.RoleSuperAdmin)

	state, err := f.svc.CreateState(ctx, admin, "Westland")
	require.NoError(t, err)
	district, err := f.svc.CreateDistrict(ctx, admin, "North", state.ID)
	require.NoError(t, err)

	missing := uuid.NewString()
	_, err = f.svc.UpdateDistrict(ctx, admin, district.ID, domain.DistrictUpdate{StateID: &missing})
	requireCode(t, err, "NOT_FOUND")

	other, err := f.svc.CreateState(ctx, admin, "Eastland")
	require.NoError(t, err)
	updated, err := f.svc.UpdateDistrict(ctx, admin, district.ID, domain.DistrictUpdate{StateID: &other.ID})
	require.NoError(t, err)
	require.Equal(t, other.ID, updated.StateID)
}
