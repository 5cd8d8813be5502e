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

// LeaveHandler exposes PTO endpoints.
type LeaveHandler struct {
	leave    *service.LeaveService
	sessions *auth.SessionManager
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leave *service.LeaveService, sessions *auth.SessionManager) *LeaveHandler {
	return &LeaveHandler{leave: leave, sessions: sessions}
}

// ListMine handles GET /api/leave.
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.leave.ListMine(c.Context(), principal, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}

// ListPending handles GET /api/leave/pending for approver views.
func (h *LeaveHandler) ListPending(c *fiber.Ctx) error {
	requests, err := h.leave.ListPending(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}

// Create handles POST /api/leave.
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LeaveCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.leave.SubmitRequest(c.Context(), principal, service.LeaveCreateInput{
		ManagerRef: req.ManagerRef,
		Type:       domain.LeaveType(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": request})
}

// Decide handles POST /api/leave/:id/decision.
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LeaveDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.leave.Decide(c.Context(), principal, c.Params("id"), req.Approve)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": request})
}
