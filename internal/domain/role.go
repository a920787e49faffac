package domain

// Role identifies the position of a user in the management hierarchy.
type Role string

const (
	RoleSuperAdmin     Role = "SuperAdmin"
	RoleDistrictAdmin  Role = "DistrictAdmin"
	RoleFacilityAdmin  Role = "FacilityAdmin"
	RoleDepartmentUser Role = "DepartmentUser"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleDistrictAdmin, RoleFacilityAdmin, RoleDepartmentUser:
		return true
	}
	return false
}
