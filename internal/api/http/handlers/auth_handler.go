package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AuthHandler exposes session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *auth.SessionManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login handles POST /auth/login. On success the session cookie is set and
// the token returned; any failure yields the same generic rejection.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	principal, token, exp, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.sessions.SetCookie(c, token, exp)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.PrincipalResponse{
				ID:    principal.ID,
				Name:  principal.Name,
				Email: principal.Email,
				Role:  string(principal.Role),
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.ClearCookie(c)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /auth/me, returning the current principal.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"data": dto.PrincipalResponse{
			ID:    principal.ID,
			Name:  principal.Name,
			Email: principal.Email,
			Role:  string(principal.Role),
		},
	})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new password required", nil)
	}

	if err := h.authService.ChangePassword(c.Context(), principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}
