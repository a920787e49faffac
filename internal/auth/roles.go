package auth

import (
	"github.com/spec-kit/health-facility-service/internal/domain"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// roleRank is the single rank table consulted by every policy decision.
// Higher rank manages lower rank; equal or higher is never manageable.
var roleRank = map[domain.Role]int{
	domain.RoleSuperAdmin:     4,
	domain.RoleDistrictAdmin:  3,
	domain.RoleFacilityAdmin:  2,
	domain.RoleDepartmentUser: 1,
}

// Creation role sets per entity type.
var (
	StateCreators      = []domain.Role{domain.RoleSuperAdmin}
	DistrictCreators   = []domain.Role{domain.RoleSuperAdmin, domain.RoleDistrictAdmin}
	FacilityCreators   = []domain.Role{domain.RoleSuperAdmin, domain.RoleDistrictAdmin, domain.RoleFacilityAdmin}
	DepartmentCreators = []domain.Role{domain.RoleSuperAdmin, domain.RoleDistrictAdmin, domain.RoleFacilityAdmin}
	HealthDataReviewers = []domain.Role{domain.RoleSuperAdmin, domain.RoleDistrictAdmin, domain.RoleFacilityAdmin}
)

// RankOf returns the hierarchy rank for a role, 0 for unknown roles.
func RankOf(r domain.Role) int {
	return roleRank[r]
}

// AllowedTargetRoles returns the roles strictly below the actor's rank,
// highest first. DepartmentUser gets an empty set.
func AllowedTargetRoles(actor domain.Role) []domain.Role {
	ordered := []domain.Role{
		domain.RoleSuperAdmin,
		domain.RoleDistrictAdmin,
		domain.RoleFacilityAdmin,
		domain.RoleDepartmentUser,
	}
	allowed := make([]domain.Role, 0, len(ordered))
	for _, r := range ordered {
		if roleRank[r] < roleRank[actor] {
			allowed = append(allowed, r)
		}
	}
	return allowed
}

// CanManage reports whether the actor outranks the target role.
func CanManage(actor, target domain.Role) bool {
	return roleRank[actor] > roleRank[target]
}

// RequireRole rejects actors whose role is outside the allowed set.
func RequireRole(actor domain.Role, allowed ...domain.Role) error {
	for _, r := range allowed {
		if actor == r {
			return nil
		}
	}
	return apperrors.NewForbidden("role not permitted for this operation")
}
