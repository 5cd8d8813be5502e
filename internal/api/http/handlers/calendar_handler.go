package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// CalendarHandler exposes company calendar endpoints.
type CalendarHandler struct {
	calendar *service.CalendarService
	sessions *auth.SessionManager
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(calendar *service.CalendarService, sessions *auth.SessionManager) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, sessions: sessions}
}

// List handles GET /api/calendar/events?from=&to=.
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	events, err := h.calendar.ListByRange(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": events})
}

// Create handles POST /api/calendar/events.
func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	principal, ok := h.sessions.Principal(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input, err := parseCalendarInput(c)
	if err != nil {
		return err
	}
	event, err := h.calendar.Create(c.Context(), principal.Email, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": event})
}

// Update handles PUT /api/calendar/events/:id.
func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	input, err := parseCalendarInput(c)
	if err != nil {
		return err
	}
	event, err := h.calendar.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": event})
}

// Delete handles DELETE /api/calendar/events/:id.
func (h *CalendarHandler) Delete(c *fiber.Ctx) error {
	if err := h.calendar.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseCalendarInput(c *fiber.Ctx) (service.CalendarEventInput, error) {
	var req dto.CalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return service.CalendarEventInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.CalendarEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		AllDay:      req.AllDay,
	}, nil
}
