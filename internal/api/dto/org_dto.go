package dto

import "time"

// CreateStateRequest payload for new states.
type CreateStateRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateStateRequest carries the partial-update fields.
type UpdateStateRequest struct {
	Name *string `json:"name"`
}

// StateResponse is the wire shape of a state.
type StateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDistrictRequest payload for new districts.
type CreateDistrictRequest struct {
	Name    string `json:"name" validate:"required"`
	StateID string `json:"stateId" validate:"required,uuid"`
}

// UpdateDistrictRequest carries the partial-update fields.
type UpdateDistrictRequest struct {
	Name    *string `json:"name"`
	StateID *string `json:"stateId" validate:"omitempty,uuid"`
}

// DistrictResponse is the wire shape of a district.
type DistrictResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StateID   string    `json:"stateId"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDepartmentRequest payload for new departments.
type CreateDepartmentRequest struct {
	Name       string `json:"name" validate:"required"`
	FacilityID string `json:"facilityId" validate:"required,uuid"`
}

// UpdateDepartmentRequest carries the partial-update fields.
type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
}

// DepartmentResponse is the wire shape of a department.
type DepartmentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FacilityID string    `json:"facilityId"`
	IsActive   bool      `json:"isActive"`
	IsDeleted  bool      `json:"isDeleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
