package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
)

func TestCreateUserBelowActorRank(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	actor := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")

	created, err := svc.Create(ctx, actor, CreateUserInput{
		FullName: "Dept User",
		Email:    "du@example.test",
		Password: "s3cret",
		Role:     domain.RoleDepartmentUser,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleDepartmentUser, created.Role)
	require.True(t, created.IsActive)
	require.False(t, created.IsDeleted)
	require.NotEqual(t, "s3cret", created.PasswordHash)
}

func TestCreateUserAtOrAboveActorRank(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	actor := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")

	_, err := svc.Create(ctx, actor, CreateUserInput{
		FullName: "Peer",
		Email:    "peer@example.test",
		Password: "s3cret",
		Role:     domain.RoleFacilityAdmin,
	})
	requireCode(t, err, "FORBIDDEN")

	_, err = svc.Create(ctx, actor, CreateUserInput{
		FullName: "Boss",
		Email:    "boss@example.test",
		Password: "s3cret",
		Role:     domain.RoleSuperAdmin,
	})
	requireCode(t, err, "FORBIDDEN")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	actor := seedUser(t, users, domain.RoleSuperAdmin, "sa@example.test", "s3cret")

	_, err := svc.Create(context.Background(), actor, CreateUserInput{
		FullName: "Nobody",
		Email:    "x@example.test",
		Password: "s3cret",
		Role:     domain.Role("Intern"),
	})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	actor := seedUser(t, users, domain.RoleSuperAdmin, "sa@example.test", "s3cret")
	seedUser(t, users, domain.RoleFacilityAdmin, "taken@example.test", "s3cret")

	_, err := svc.Create(context.Background(), actor, CreateUserInput{
		FullName: "Dup",
		Email:    "taken@example.test",
		Password: "s3cret",
		Role:     domain.RoleDepartmentUser,
	})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestListUsersFiltersByActorRank(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)

	superAdmin := seedUser(t, users, domain.RoleSuperAdmin, "sa@example.test", "s3cret")
	districtAdmin := seedUser(t, users, domain.RoleDistrictAdmin, "da@example.test", "s3cret")
	facilityAdmin := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")
	seedUser(t, users, domain.RoleDepartmentUser, "du@example.test", "s3cret")

	listed, err := svc.List(ctx, superAdmin)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, u := range listed {
		require.NotEqual(t, domain.RoleSuperAdmin, u.Role)
	}

	listed, err = svc.List(ctx, districtAdmin)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	listed, err = svc.List(ctx, facilityAdmin)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, domain.RoleDepartmentUser, listed[0].Role)
}

func TestListUsersForbiddenForDepartmentUser(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	actor := seedUser(t, users, domain.RoleDepartmentUser, "du@example.test", "s3cret")

	_, err := svc.List(context.Background(), actor)
	requireCode(t, err, "FORBIDDEN")
}

func TestListUsersExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	superAdmin := seedUser(t, users, domain.RoleSuperAdmin, "sa@example.test", "s3cret")
	victim := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")

	_, err := users.SoftDelete(ctx, victim.ID)
	require.NoError(t, err)

	listed, err := svc.List(ctx, superAdmin)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestUpdateUserPartial(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	user := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")

	name := "Renamed"
	updated, err := svc.Update(ctx, user.ID, domain.UserUpdate{FullName: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.FullName)
	require.Equal(t, user.Email, updated.Email)
}

func TestUpdateUserErrors(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)

	name := "Renamed"
	_, err := svc.Update(context.Background(), "bogus", domain.UserUpdate{FullName: &name})
	requireCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Update(context.Background(), uuid.NewString(), domain.UserUpdate{FullName: &name})
	requireCode(t, err, "NOT_FOUND")
}

func TestSoftDeleteUserThenGuardBlocks(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewUserService(users, bcrypt.MinCost)
	user := seedUser(t, users, domain.RoleFacilityAdmin, "fa@example.test", "s3cret")

	deleted, err := svc.SoftDelete(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted.IsDeleted)

	// every subsequent single-entity operation hits the lifecycle gate
	_, err = svc.GetByID(ctx, user.ID)
	requireCode(t, err, "FORBIDDEN")
	_, err = svc.SoftDelete(ctx, user.ID)
	requireCode(t, err, "FORBIDDEN")
}
