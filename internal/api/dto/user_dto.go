package dto

import "time"

// CreateUserRequest payload for new accounts.
type CreateUserRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=SuperAdmin DistrictAdmin FacilityAdmin DepartmentUser"`
}

// UpdateUserRequest carries the partial-update fields.
type UpdateUserRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNumber *string `json:"mobileNumber"`
}

// UserResponse is the wire shape of a user. The password hash and refresh
// token never leave the service.
type UserResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
