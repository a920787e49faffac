package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// UserService manages user accounts under the role hierarchy.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUserInput carries the fields for account creation.
type CreateUserInput struct {
	FullName     string
	Email        string
	MobileNumber string
	Password     string
	Role         domain.Role
}

// Create registers a new account. The target role must be strictly below the
// actor's rank; the role is immutable afterwards.
func (s *UserService) Create(ctx context.Context, actor *domain.User, in CreateUserInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": in.Role})
	}
	if !auth.CanManage(actor.Role, in.Role) {
		return nil, apperrors.NewForbidden("cannot create a user at or above your rank")
	}
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, apperrors.NewValidationError("fullName, email and password are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.NewValidationError("email already registered", map[string]any{"email": in.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns the active, non-deleted users whose role the actor may view.
// An actor with no subordinate roles gets an authorization error, not an
// empty list.
func (s *UserService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	allowed := auth.AllowedTargetRoles(actor.Role)
	if len(allowed) == 0 {
		return nil, apperrors.NewForbidden("you are not authorized to access this resource")
	}
	users, err := s.users.ListByRoles(ctx, allowed)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetByID fetches a user after the lifecycle gate.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return loadGuarded(ctx, id, s.users.GetByID)
}

// Update applies a partial update after the lifecycle gate.
func (s *UserService) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	if _, err := loadGuarded(ctx, id, s.users.GetByID); err != nil {
		return nil, err
	}
	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// SoftDelete flags the user as deleted after the lifecycle gate. There is no
// hard delete anywhere in the model.
func (s *UserService) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	if _, err := loadGuarded(ctx, id, s.users.GetByID); err != nil {
		return nil, err
	}
	user, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
