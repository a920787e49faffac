package domain

import "time"

// District belongs to a state and groups facilities.
type District struct {
	ID        string
	Name      string
	StateID   string
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DistrictUpdate carries the mutable district fields; nil means leave untouched.
type DistrictUpdate struct {
	Name    *string
	StateID *string
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (d *District) LifecycleFlags() (isActive, isDeleted bool) {
	return d.IsActive, d.IsDeleted
}
