package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
)

func TestLoadGuardedRejectsMalformedID(t *testing.T) {
	facilities := repository.NewMemoryFacilityRepository()

	_, err := loadGuarded(context.Background(), "not-a-uuid", facilities.GetByID)
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestLoadGuardedRejectsMissingEntity(t *testing.T) {
	facilities := repository.NewMemoryFacilityRepository()

	_, err := loadGuarded(context.Background(), uuid.NewString(), facilities.GetByID)
	requireCode(t, err, "NOT_FOUND")
}

func TestLoadGuardedRejectsInactiveEntity(t *testing.T) {
	ctx := context.Background()
	facilities := repository.NewMemoryFacilityRepository()
	facility := &domain.Facility{
		Name:     "Closed",
		Address:  domain.Address{State: "X", City: "Y", Pincode: "123"},
		Type:     domain.FacilityTypeClinic,
		IsActive: false,
	}
	require.NoError(t, facilities.Create(ctx, facility))

	_, err := loadGuarded(ctx, facility.ID, facilities.GetByID)
	requireCode(t, err, "FORBIDDEN")
	require.Contains(t, err.Error(), "not active")
}

func TestLoadGuardedRejectsDeletedEntity(t *testing.T) {
	ctx := context.Background()
	facilities := repository.NewMemoryFacilityRepository()
	facility := seedFacility(t, facilities)

	_, err := facilities.SoftDelete(ctx, facility.ID)
	require.NoError(t, err)

	_, err = loadGuarded(ctx, facility.ID, facilities.GetByID)
	requireCode(t, err, "FORBIDDEN")
	require.Contains(t, err.Error(), "deleted")
}

func TestLoadGuardedReturnsHealthyEntity(t *testing.T) {
	ctx := context.Background()
	facilities := repository.NewMemoryFacilityRepository()
	facility := seedFacility(t, facilities)

	got, err := loadGuarded(ctx, facility.ID, facilities.GetByID)
	require.NoError(t, err)
	require.Equal(t, facility.ID, got.ID)
}

func TestValidateID(t *testing.T) {
	require.NoError(t, validateID(uuid.NewString()))
	requireCode(t, validateID("123"), "VALIDATION_FAILED")
}
