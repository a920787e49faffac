package dto

import "time"

// CreateHealthDataRequest payload for new reports.
type CreateHealthDataRequest struct {
	FacilityID   string         `json:"facilityId" validate:"required,uuid"`
	DepartmentID string         `json:"departmentId" validate:"required,uuid"`
	Data         map[string]any `json:"data" validate:"required"`
}

// UpdateHealthDataRequest carries the partial-update fields.
type UpdateHealthDataRequest struct {
	Data map[string]any `json:"data"`
}

// UpdateHealthDataStatusRequest moves a report to a review decision.
type UpdateHealthDataStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// HealthDataResponse is the wire shape of a report.
type HealthDataResponse struct {
	ID           string         `json:"id"`
	FacilityID   string         `json:"facilityId"`
	DepartmentID string         `json:"departmentId"`
	ReportedBy   string         `json:"reportedBy"`
	Data         map[string]any `json:"data"`
	Status       string         `json:"status"`
	DateOfReport time.Time      `json:"dateOfReport"`
	IsActive     bool           `json:"isActive"`
	IsDeleted    bool           `json:"isDeleted"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
