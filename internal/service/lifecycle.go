package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// lifecycled is implemented by every soft-deletable domain entity.
type lifecycled interface {
	LifecycleFlags() (isActive, isDeleted bool)
}

// loadGuarded is the lifecycle gate applied before any single-entity read,
// update, or delete. It validates the identifier, loads the entity, and
// rejects suspended or soft-deleted resources. Never applied to creation or
// list operations.
func loadGuarded[T lifecycled](ctx context.Context, id string, load func(context.Context, string) (T, error)) (T, error) {
	var zero T
	if _, err := uuid.Parse(id); err != nil {
		return zero, apperrors.NewValidationError("invalid id format", map[string]any{"id": id})
	}
	entity, err := load(ctx, id)
	if err != nil {
		return zero, apperrors.MapError(err)
	}
	isActive, isDeleted := entity.LifecycleFlags()
	if !isActive {
		return zero, apperrors.NewForbidden("resource is not active")
	}
	if isDeleted {
		return zero, apperrors.NewForbidden("resource is deleted")
	}
	return entity, nil
}

// validateID rejects malformed identifiers before they reach storage.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid id format", map[string]any{"id": id})
	}
	return nil
}
