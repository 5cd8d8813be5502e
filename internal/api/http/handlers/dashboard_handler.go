package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/service"
)

// DashboardHandler exposes landing-page KPI endpoints.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// KPIs handles GET /api/dashboard/kpis.
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	kpis, err := h.dashboard.KPIs(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": kpis})
}
