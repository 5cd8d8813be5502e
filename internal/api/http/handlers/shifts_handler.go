package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ShiftsHandler exposes shift scheduling endpoints.
type ShiftsHandler struct {
	shifts *service.ShiftService
}

// NewShiftsHandler constructs handler.
func NewShiftsHandler(shifts *service.ShiftService) *ShiftsHandler {
	return &ShiftsHandler{shifts: shifts}
}

// List handles GET /api/shifts?from=&to=&employee_id=.
func (h *ShiftsHandler) List(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	if employeeID := c.Query("employee_id"); employeeID != "" {
		shifts, err := h.shifts.ListByEmployee(c.Context(), employeeID, from, to)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": shifts})
	}

	shifts, err := h.shifts.ListByRange(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shifts})
}

// Create handles POST /api/shifts.
func (h *ShiftsHandler) Create(c *fiber.Ctx) error {
	input, err := parseShiftInput(c)
	if err != nil {
		return err
	}
	shift, err := h.shifts.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": shift})
}

// Update handles PUT /api/shifts/:id.
func (h *ShiftsHandler) Update(c *fiber.Ctx) error {
	input, err := parseShiftInput(c)
	if err != nil {
		return err
	}
	shift, err := h.shifts.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shift})
}

// Delete handles DELETE /api/shifts/:id.
func (h *ShiftsHandler) Delete(c *fiber.Ctx) error {
	if err := h.shifts.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseShiftInput(c *fiber.Ctx) (service.ShiftInput, error) {
	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ShiftInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.ShiftInput{
		EmployeeID: req.EmployeeID,
		Position:   req.Position,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Notes:      req.Notes,
	}, nil
}

// parseRange reads from/to query params, defaulting to the coming week.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now
	to := now.AddDate(0, 0, 7)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid from timestamp", nil)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid to timestamp", nil)
		}
		to = parsed
	}
	return from, to, nil
}
