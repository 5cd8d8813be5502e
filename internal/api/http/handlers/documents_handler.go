package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// DocumentsHandler exposes document metadata endpoints.
type DocumentsHandler struct {
	documents *service.DocumentService
	sessions  *auth.SessionManager
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documents *service.DocumentService, sessions *auth.SessionManager) *DocumentsHandler {
	return &DocumentsHandler{documents: documents, sessions: sessions}
}

// List handles GET /api/documents?owner=.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	var owner *string
	if o := c.Query("owner"); o != "" {
		owner = &o
	}
	docs, err := h.documents.List(c.Context(), owner, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": docs})
}

// Create handles POST /api/documents.
func (h *DocumentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	doc, err := h.documents.Register(c.Context(), principal, service.DocumentInput{
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		SizeBytes:  req.SizeBytes,
		OwnerEmail: req.OwnerEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": doc})
}

// Delete handles DELETE /api/documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.documents.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
