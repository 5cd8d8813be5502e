package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/auth"
)

// PagesHandler serves the minimal page routes the guard redirects between.
// The dashboard UI itself is rendered by a separate frontend; these routes
// exist so redirect targets resolve.
type PagesHandler struct {
	sessions *auth.SessionManager
}

// NewPagesHandler constructs handler.
func NewPagesHandler(sessions *auth.SessionManager) *PagesHandler {
	return &PagesHandler{sessions: sessions}
}

// Login handles GET /login. callbackUrl is echoed so the client can return
// after signing in.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":        "login",
		"callbackUrl": c.Query("callbackUrl", auth.LandingPath),
	})
}

// Dashboard handles GET /dashboard, the authenticated landing page.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	principal, _ := h.sessions.Principal(c)
	return c.JSON(fiber.Map{
		"page": "dashboard",
		"user": fiber.Map{
			"name": principal.Name,
			"role": principal.Role,
		},
	})
}

// Home handles GET /, which is exempt from the guard.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "home"})
}
