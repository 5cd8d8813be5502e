package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AnnouncementsHandler exposes broadcast endpoints.
type AnnouncementsHandler struct {
	announcements *service.AnnouncementService
	sessions      *auth.SessionManager
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(announcements *service.AnnouncementService, sessions *auth.SessionManager) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcements: announcements, sessions: sessions}
}

// List handles GET /api/announcements. Viewers only see published entries;
// HR and admins also see drafts.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	publishedOnly := principal.Role != domain.RoleAdmin && principal.Role != domain.RoleHR
	anns, err := h.announcements.List(c.Context(), publishedOnly, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": anns})
}

// Create handles POST /api/announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ann, err := h.announcements.CreateDraft(c.Context(), principal, service.AnnouncementInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ann})
}

// Publish handles POST /api/announcements/:id/publish.
func (h *AnnouncementsHandler) Publish(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	ann, err := h.announcements.Publish(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ann})
}
