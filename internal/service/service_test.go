package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// Shared helpers for the service tests. All of them run against the
// in-memory repositories, which mirror the Postgres semantics.

func seedUser(t *testing.T, users repository.UserRepository, role domain.Role, email, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		FullName:     "Test " + string(role),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func seedFacility(t *testing.T, facilities repository.FacilityRepository) *domain.Facility {
	t.Helper()
	facility := &domain.Facility{
		Name:     "General",
		Address:  domain.Address{State: "X", City: "Y", Pincode: "123"},
		Type:     domain.FacilityTypeHospital,
		IsActive: true,
	}
	require.NoError(t, facilities.Create(context.Background(), facility))
	return facility
}

func seedDepartment(t *testing.T, departments repository.DepartmentRepository, facilityID string) *domain.Department {
	t.Helper()
	dept := &domain.Department{Name: "Cardiology", FacilityID: facilityID, IsActive: true}
	require.NoError(t, departments.Create(context.Background(), dept))
	return dept
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
}
