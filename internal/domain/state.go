package domain

import "time"

// State is the top level of the containment hierarchy.
type State struct {
	ID        string
	Name      string
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StateUpdate carries the mutable state fields; nil means leave untouched.
type StateUpdate struct {
	Name *string
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (s *State) LifecycleFlags() (isActive, isDeleted bool) {
	return s.IsActive, s.IsDeleted
}
