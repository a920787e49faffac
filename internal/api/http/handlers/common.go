package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return nil
}

// respond writes the success envelope.
func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"data":       data,
		"message":    message,
	})
}

// actorFromContext returns the authenticated user set by the auth middleware.
func actorFromContext(c *fiber.Ctx) (*domain.User, error) {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return actor, nil
}
