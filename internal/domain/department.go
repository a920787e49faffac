package domain

import "time"

// Department belongs to exactly one facility.
type Department struct {
	ID         string
	Name       string
	FacilityID string
	IsActive   bool
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DepartmentUpdate carries the mutable department fields; nil means leave untouched.
type DepartmentUpdate struct {
	Name *string
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (d *Department) LifecycleFlags() (isActive, isDeleted bool) {
	return d.IsActive, d.IsDeleted
}
