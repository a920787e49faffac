package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/dto"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/service"
)

// UsersHandler exposes user management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
		IsDeleted:    user.IsDeleted,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// Create handles POST /api/v1/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Context(), actor, service.CreateUserInput{
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
		Role:         domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toUserResponse(user), "user created successfully")
}

// List handles GET /api/v1/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	users, err := h.users.List(c.Context(), actor)
	if err != nil {
		return err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return respond(c, http.StatusOK, result, "users fetched successfully")
}

// Get handles GET /api/v1/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toUserResponse(user), "user fetched successfully")
}

// Update handles PATCH /api/v1/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.users.Update(c.Context(), c.Params("id"), domain.UserUpdate{
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toUserResponse(user), "user updated successfully")
}

// Delete handles DELETE /api/v1/users/:id (soft delete).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.users.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "user deleted successfully")
}
