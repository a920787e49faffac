package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", time.Minute, "refresh-secret", time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager()

	token, expiresAt, err := tm.GenerateAccessToken("user-1", domain.RoleDistrictAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, domain.RoleDistrictAdmin, claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := newTestManager()

	token, _, err := tm.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	claims, err := tm.ParseRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-2", claims.UserID)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	tm := newTestManager()

	access, _, err := tm.GenerateAccessToken("user-3", domain.RoleSuperAdmin)
	require.NoError(t, err)
	refresh, _, err := tm.GenerateRefreshToken("user-3")
	require.NoError(t, err)

	_, err = tm.ParseRefreshToken(access)
	require.Error(t, err)
	_, err = tm.ParseAccessToken(refresh)
	require.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("other-access", time.Minute, "other-refresh", time.Hour)

	token, _, err := other.GenerateAccessToken("user-4", domain.RoleFacilityAdmin)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	require.Error(t, err)
}

func TestParseRejectsForeignSigningMethod(t *testing.T) {
	tm := newTestManager()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": "user-5"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(unsigned)
	require.Error(t, err)
	_, err = tm.ParseRefreshToken(unsigned)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("access-secret", time.Nanosecond, "refresh-secret", time.Nanosecond)

	token, _, err := tm.GenerateAccessToken("user-6", domain.RoleDepartmentUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseAccessToken(token)
	require.Error(t, err)
}

func TestSuccessiveTokensDiffer(t *testing.T) {
	tm := newTestManager()

	first, _, err := tm.GenerateRefreshToken("user-7")
	require.NoError(t, err)
	second, _, err := tm.GenerateRefreshToken("user-7")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
