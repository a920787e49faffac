package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/dto"
	"github.com/spec-kit/health-facility-service/internal/service"
)

// AuthsHandler exposes login and refresh-token endpoints.
type AuthsHandler struct {
	auth *service.AuthService
}

// NewAuthsHandler constructs handler.
func NewAuthsHandler(authService *service.AuthService) *AuthsHandler {
	return &AuthsHandler{auth: authService}
}

// Login handles POST /api/v1/auths/login.
func (h *AuthsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pair, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "user logged in successfully")
}

// Refresh handles POST /api/v1/auths/refresh-token. The refresh token is
// read from the refreshToken header first, then the body.
func (h *AuthsHandler) Refresh(c *fiber.Ctx) error {
	presented := c.Get("refreshToken")
	if presented == "" {
		var req dto.RefreshRequest
		// body is optional when the header is present
		_ = c.BodyParser(&req)
		presented = req.RefreshToken
	}

	pair, err := h.auth.Refresh(c.Context(), presented)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "access token refreshed")
}
