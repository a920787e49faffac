package dto

import "time"

// AddressPayload is the nested address block; every field is required.
type AddressPayload struct {
	State   string `json:"state" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// CreateFacilityRequest payload for new facilities.
type CreateFacilityRequest struct {
	Name       string         `json:"name" validate:"required"`
	Address    AddressPayload `json:"address" validate:"required"`
	Type       string         `json:"type" validate:"required,oneof=Hospital Clinic 'Health Center'"`
	DistrictID *string        `json:"districtId"`
}

// UpdateFacilityRequest carries the partial-update fields.
type UpdateFacilityRequest struct {
	Name           *string `json:"name"`
	AddressState   *string `json:"addressState"`
	AddressCity    *string `json:"addressCity"`
	AddressPincode *string `json:"addressPincode"`
	Type           *string `json:"type" validate:"omitempty,oneof=Hospital Clinic 'Health Center'"`
	DistrictID     *string `json:"districtId"`
}

// FacilityResponse is the wire shape of a facility.
type FacilityResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Address    AddressPayload `json:"address"`
	Type       string         `json:"type"`
	DistrictID *string        `json:"districtId,omitempty"`
	IsActive   bool           `json:"isActive"`
	IsDeleted  bool           `json:"isDeleted"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
