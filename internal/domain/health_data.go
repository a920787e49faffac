package domain

import "time"

// HealthDataStatus tracks the review state of a report.
type HealthDataStatus string

const (
	HealthDataStatusPending  HealthDataStatus = "Pending"
	HealthDataStatusApproved HealthDataStatus = "Approved"
	HealthDataStatusRejected HealthDataStatus = "Rejected"
)

// Valid reports whether the status is a known value.
func (s HealthDataStatus) Valid() bool {
	switch s {
	case HealthDataStatusPending, HealthDataStatusApproved, HealthDataStatusRejected:
		return true
	}
	return false
}

// HealthData is a report submitted by a department user for a facility.
// Data is an opaque payload stored as-is.
type HealthData struct {
	ID           string
	FacilityID   string
	DepartmentID string
	ReportedBy   string
	Data         map[string]any
	Status       HealthDataStatus
	DateOfReport time.Time
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HealthDataUpdate carries the mutable report fields; nil means leave untouched.
type HealthDataUpdate struct {
	Data map[string]any
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (h *HealthData) LifecycleFlags() (isActive, isDeleted bool) {
	return h.IsActive, h.IsDeleted
}
