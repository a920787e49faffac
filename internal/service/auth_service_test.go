package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/config"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:  "test-access-secret",
		AccessTTL:     time.Minute,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    time.Hour,
	}
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	user := seedUser(t, users, domain.RoleSuperAdmin, "admin@example.test", "s3cret")
	svc := NewAuthService(testAuthConfig(), users, nil)

	pair, err := svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.TokenManager().ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, domain.RoleSuperAdmin, claims.Role)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	require.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	seedUser(t, users, domain.RoleSuperAdmin, "admin@example.test", "s3cret")
	svc := NewAuthService(testAuthConfig(), users, nil)

	_, err := svc.Login(ctx, "admin@example.test", "wrong")
	requireCode(t, err, "UNAUTHORIZED")

	// unknown email is indistinguishable from a wrong password
	_, err = svc.Login(ctx, "nobody@example.test", "s3cret")
	requireCode(t, err, "UNAUTHORIZED")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), repository.NewMemoryUserRepository(), nil)

	_, err := svc.Login(context.Background(), "", "s3cret")
	requireCode(t, err, "VALIDATION_FAILED")
	_, err = svc.Login(context.Background(), "admin@example.test", "")
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestLoginIgnoresSuspendedAndDeletedAccounts(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewAuthService(testAuthConfig(), users, nil)

	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	suspended := &domain.User{
		FullName:     "Suspended",
		Email:        "off@example.test",
		PasswordHash: hash,
		Role:         domain.RoleFacilityAdmin,
		IsActive:     false,
	}
	require.NoError(t, users.Create(ctx, suspended))

	_, err = svc.Login(ctx, "off@example.test", "s3cret")
	requireCode(t, err, "UNAUTHORIZED")

	deleted := seedUser(t, users, domain.RoleFacilityAdmin, "gone@example.test", "s3cret")
	_, err = users.SoftDelete(ctx, deleted.ID)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "gone@example.test", "s3cret")
	requireCode(t, err, "UNAUTHORIZED")
}

func TestLoginThrottleLockout(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	users := repository.NewMemoryUserRepository()
	seedUser(t, users, domain.RoleSuperAdmin, "admin@example.test", "s3cret")
	throttle := auth.NewLoginThrottle(client, 2, time.Minute)
	svc := NewAuthService(testAuthConfig(), users, throttle)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, "admin@example.test", "wrong")
		requireCode(t, err, "UNAUTHORIZED")
	}

	// locked out even with the correct password
	_, err := svc.Login(ctx, "admin@example.test", "s3cret")
	requireCode(t, err, "UNAUTHORIZED")
	require.Contains(t, err.Error(), "too many login attempts")
}

func TestLoginResetsThrottleOnSuccess(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	users := repository.NewMemoryUserRepository()
	seedUser(t, users, domain.RoleSuperAdmin, "admin@example.test", "s3cret")
	throttle := auth.NewLoginThrottle(client, 3, time.Minute)
	svc := NewAuthService(testAuthConfig(), users, throttle)

	_, err := svc.Login(ctx, "admin@example.test", "wrong")
	requireCode(t, err, "UNAUTHORIZED")
	_, err = svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)

	// counter was cleared, so two more failures stay under the limit
	for i := 0; i < 2; i++ {
		_, err = svc.Login(ctx, "admin@example.test", "wrong")
		requireCode(t, err, "UNAUTHORIZED")
	}
	_, err = svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)
}

func TestRefreshRotatesSingleSlot(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	seedUser(t, users, domain.RoleDistrictAdmin, "admin@example.test", "s3cret")
	svc := NewAuthService(testAuthConfig(), users, nil)

	first, err := svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the consumed token is permanently unusable
	_, err = svc.Refresh(ctx, first.RefreshToken)
	requireCode(t, err, "UNAUTHORIZED")
	require.Contains(t, err.Error(), "expired or used")

	// the freshly issued one works
	third, err := svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, second.RefreshToken, third.RefreshToken)
}

func TestRefreshInvalidatedByNewLogin(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	seedUser(t, users, domain.RoleDistrictAdmin, "admin@example.test", "s3cret")
	svc := NewAuthService(testAuthConfig(), users, nil)

	first, err := svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, first.RefreshToken)
	requireCode(t, err, "UNAUTHORIZED")

	_, err = svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	svc := NewAuthService(testAuthConfig(), users, nil)

	_, err := svc.Refresh(ctx, "")
	requireCode(t, err, "UNAUTHORIZED")

	_, err = svc.Refresh(ctx, "not-a-jwt")
	requireCode(t, err, "UNAUTHORIZED")
}

func TestRefreshRejectsDisabledAccount(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	user := seedUser(t, users, domain.RoleDistrictAdmin, "admin@example.test", "s3cret")
	svc := NewAuthService(testAuthConfig(), users, nil)

	pair, err := svc.Login(ctx, "admin@example.test", "s3cret")
	require.NoError(t, err)

	_, err = users.SoftDelete(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	requireCode(t, err, "UNAUTHORIZED")
}
