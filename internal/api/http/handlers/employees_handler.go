package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// EmployeesHandler exposes employee record endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	var department *string
	if d := c.Query("department"); d != "" {
		department = &d
	}
	employees, err := h.employees.List(c.Context(), department, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employees})
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.employees.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": emp})
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	input, err := parseEmployeeInput(c)
	if err != nil {
		return err
	}
	emp, err := h.employees.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": emp})
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	input, err := parseEmployeeInput(c)
	if err != nil {
		return err
	}
	emp, err := h.employees.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": emp})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.employees.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseEmployeeInput(c *fiber.Ctx) (service.EmployeeInput, error) {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return service.EmployeeInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		req.Status = string(domain.EmployeeStatusActive)
	}
	return service.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Title:      req.Title,
		Department: req.Department,
		ManagerRef: req.ManagerRef,
		Status:     domain.EmployeeStatus(req.Status),
		StartDate:  req.StartDate,
	}, nil
}
