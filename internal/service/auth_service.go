package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/config"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// AuthService issues and rotates access/refresh token pairs. Each user holds
// at most one valid refresh token: logging in or refreshing invalidates any
// other outstanding refresh token for that user.
type AuthService struct {
	users    repository.UserRepository
	tokens   *auth.TokenManager
	throttle *auth.LoginThrottle
}

// NewAuthService builds the service. The throttle may be nil to disable
// login-attempt limiting.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, throttle *auth.LoginThrottle) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   auth.NewTokenManager(cfg.AccessSecret, cfg.AccessTTL, cfg.RefreshSecret, cfg.RefreshTTL),
		throttle: throttle,
	}
}

// Login authenticates a user by email and password and returns a fresh token
// pair. Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required", nil)
	}
	if !s.throttle.Allow(ctx, email) {
		return nil, apperrors.NewUnauthorized("too many login attempts, try again later")
	}

	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.RecordFailure(ctx, email)
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, email)
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	pair, err := s.mintPair(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.users.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.throttle.Reset(ctx, email)
	return pair, nil
}

// Refresh verifies a presented refresh token and rotates it. The presented
// token must byte-for-byte equal the stored one; rotation is single-shot, so
// the token just presented becomes permanently unusable in the same request.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*auth.TokenPair, error) {
	if presented == "" {
		return nil, apperrors.NewUnauthorized("refresh token is missing")
	}

	claims, err := s.tokens.ParseRefreshToken(presented)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid refresh token")
		}
		return nil, apperrors.MapError(err)
	}
	if !user.IsActive || user.IsDeleted {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}
	if user.RefreshToken == nil || *user.RefreshToken != presented {
		return nil, apperrors.NewUnauthorized("refresh token is expired or used")
	}

	pair, err := s.mintPair(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	// Compare-and-set against the presented token: of two concurrent
	// refreshes with the same token, exactly one write wins and the loser
	// observes a mismatch.
	if err := s.users.RotateRefreshToken(ctx, user.ID, presented, pair.RefreshToken); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("refresh token is expired or used")
		}
		return nil, apperrors.MapError(err)
	}
	return pair, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) mintPair(userID string, role domain.Role) (*auth.TokenPair, error) {
	access, _, err := s.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &auth.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
