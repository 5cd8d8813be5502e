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

// ApplicantsHandler exposes hiring pipeline endpoints.
type ApplicantsHandler struct {
	applicants *service.ApplicantService
	sessions   *auth.SessionManager
}

// NewApplicantsHandler constructs handler.
func NewApplicantsHandler(applicants *service.ApplicantService, sessions *auth.SessionManager) *ApplicantsHandler {
	return &ApplicantsHandler{applicants: applicants, sessions: sessions}
}

// List handles GET /api/applicants.
func (h *ApplicantsHandler) List(c *fiber.Ctx) error {
	var stage *domain.ApplicantStage
	if s := c.Query("stage"); s != "" {
		parsed := domain.ApplicantStage(s)
		stage = &parsed
	}
	applicants, err := h.applicants.List(c.Context(), stage, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicants})
}

// Get handles GET /api/applicants/:id.
func (h *ApplicantsHandler) Get(c *fiber.Ctx) error {
	app, err := h.applicants.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": app})
}

// Create handles POST /api/applicants.
func (h *ApplicantsHandler) Create(c *fiber.Ctx) error {
	var req dto.ApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.applicants.Create(c.Context(), service.ApplicantInput{
		Name:      req.Name,
		Email:     req.Email,
		Position:  req.Position,
		Notes:     req.Notes,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": app})
}

// MoveStage handles POST /api/applicants/:id/stage.
func (h *ApplicantsHandler) MoveStage(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ApplicantStageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.applicants.MoveStage(c.Context(), principal, c.Params("id"), domain.ApplicantStage(req.Stage))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": app})
}

// UpdateNotes handles PUT /api/applicants/:id/notes.
func (h *ApplicantsHandler) UpdateNotes(c *fiber.Ctx) error {
	var req dto.ApplicantNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.applicants.UpdateNotes(c.Context(), c.Params("id"), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": app})
}
