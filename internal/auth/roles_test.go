package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

func TestAllowedTargetRoles(t *testing.T) {
	cases := []struct {
		actor domain.Role
		want  []domain.Role
	}{
		{domain.RoleSuperAdmin, []domain.Role{domain.RoleDistrictAdmin, domain.RoleFacilityAdmin, domain.RoleDepartmentUser}},
		{domain.RoleDistrictAdmin, []domain.Role{domain.RoleFacilityAdmin, domain.RoleDepartmentUser}},
		{domain.RoleFacilityAdmin, []domain.Role{domain.RoleDepartmentUser}},
		{domain.RoleDepartmentUser, []domain.Role{}},
	}
	for _, tc := range cases {
		t.Run(string(tc.actor), func(t *testing.T) {
			got := AllowedTargetRoles(tc.actor)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAllowedTargetRolesExcludesSelfAndAbove(t *testing.T) {
	for role := range roleRank {
		for _, target := range AllowedTargetRoles(role) {
			require.Less(t, RankOf(target), RankOf(role))
			require.NotEqual(t, role, target)
		}
	}
}

func TestCanManage(t *testing.T) {
	require.True(t, CanManage(domain.RoleSuperAdmin, domain.RoleDistrictAdmin))
	require.True(t, CanManage(domain.RoleFacilityAdmin, domain.RoleDepartmentUser))

	require.False(t, CanManage(domain.RoleDistrictAdmin, domain.RoleDistrictAdmin))
	require.False(t, CanManage(domain.RoleDepartmentUser, domain.RoleSuperAdmin))
	require.False(t, CanManage(domain.RoleFacilityAdmin, domain.RoleDistrictAdmin))
}

func TestRankOfUnknownRole(t *testing.T) {
	require.Zero(t, RankOf(domain.Role("Intern")))
	require.False(t, CanManage(domain.Role("Intern"), domain.RoleDepartmentUser))
}

func TestRequireRole(t *testing.T) {
	require.NoError(t, RequireRole(domain.RoleSuperAdmin, StateCreators...))
	require.NoError(t, RequireRole(domain.RoleFacilityAdmin, FacilityCreators...))

	err := RequireRole(domain.RoleDepartmentUser, HealthDataReviewers...)
	require.Error(t, err)

	err = RequireRole(domain.RoleDistrictAdmin, StateCreators...)
	require.Error(t, err)
}
