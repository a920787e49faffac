package domain

import "time"

// FacilityType enumerates supported facility categories.
type FacilityType string

const (
	FacilityTypeHospital     FacilityType = "Hospital"
	FacilityTypeClinic       FacilityType = "Clinic"
	FacilityTypeHealthCenter FacilityType = "Health Center"
)

// Valid reports whether the facility type is a known value.
func (t FacilityType) Valid() bool {
	switch t {
	case FacilityTypeHospital, FacilityTypeClinic, FacilityTypeHealthCenter:
		return true
	}
	return false
}

// Address locates a facility. All fields are required.
type Address struct {
	State   string
	City    string
	Pincode string
}

// Facility is a health facility belonging to at most one district.
type Facility struct {
	ID         string
	Name       string
	Address    Address
	Type       FacilityType
	DistrictID *string
	IsActive   bool
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FacilityUpdate carries the mutable facility fields; nil means leave untouched.
type FacilityUpdate struct {
	Name           *string
	AddressState   *string
	AddressCity    *string
	AddressPincode *string
	Type           *FacilityType
	DistrictID     *string
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (f *Facility) LifecycleFlags() (isActive, isDeleted bool) {
	return f.IsActive, f.IsDeleted
}
