package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "health-facility-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("ACCESS_SECRET", "env-access")
	t.Setenv("ACCESS_TTL", "30m")
	t.Setenv("REFRESH_SECRET", "env-refresh")
	t.Setenv("REFRESH_TTL", "48h")
	t.Setenv("AUTH_BCRYPT_COST", "10")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOGIN_ATTEMPT_WINDOW", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9999", cfg.App.Addr())
	require.Equal(t, "env-access", cfg.Auth.AccessSecret)
	require.Equal(t, 30*time.Minute, cfg.Auth.AccessTTL)
	require.Equal(t, "env-refresh", cfg.Auth.RefreshSecret)
	require.Equal(t, 48*time.Hour, cfg.Auth.RefreshTTL)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 3, cfg.Auth.LoginMaxAttempts)
	require.Equal(t, 5*time.Minute, cfg.Auth.LoginAttemptWindow)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ACCESS_TTL", "soon")
	t.Setenv("AUTH_BCRYPT_COST", "expensive")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "main")

	_, err := Load()
	require.Error(t, err)
}
