package domain

import "time"

// User is an account in the facility hierarchy. Role is fixed at creation.
// RefreshToken holds the single currently-valid refresh token, if any.
type User struct {
	ID           string
	FullName     string
	Email        string
	MobileNumber string
	PasswordHash string
	Role         Role
	RefreshToken *string
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the mutable user fields; nil means leave untouched.
type UserUpdate struct {
	FullName     *string
	Email        *string
	MobileNumber *string
}

// LifecycleFlags exposes the soft-delete state for the lifecycle guard.
func (u *User) LifecycleFlags() (isActive, isDeleted bool) {
	return u.IsActive, u.IsDeleted
}
