package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/domain"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// Middleware applies the authorization guard at the edge, before any handler
// or body parsing runs.
type Middleware struct {
	sessions *SessionManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(sessions *SessionManager) *Middleware {
	return &Middleware{sessions: sessions}
}

// Handle evaluates the prefix rules for every inbound request. API paths
// surface 401/403; page paths are redirected per the guard's decision.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	principal, _ := m.sessions.Principal(c)

	decision := Authorize(principal, c.Path())
	if decision.Allowed {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		if decision.Reason == ReasonUnauthenticated {
			return apperrors.NewUnauthorized("authentication required")
		}
		return apperrors.NewForbidden("admin role required")
	}
	return c.Redirect(decision.Redirect, fiber.StatusFound)
}

// RequirePrincipal ensures the caller is authenticated.
func (m *Middleware) RequirePrincipal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := m.sessions.Principal(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireRole ensures the caller holds one of the allowed roles. An empty
// list only requires authentication.
func (m *Middleware) RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := Roles(allowed...)
	return func(c *fiber.Ctx) error {
		principal, ok := m.sessions.Principal(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if !allowedSet.Contains(principal.Role) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
