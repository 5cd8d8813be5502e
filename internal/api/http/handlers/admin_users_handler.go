package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AdminUsersHandler exposes account management under the admin prefix.
type AdminUsersHandler struct {
	users *service.UserService
}

// NewAdminUsersHandler constructs handler.
func NewAdminUsersHandler(users *service.UserService) *AdminUsersHandler {
	return &AdminUsersHandler{users: users}
}

// List handles GET /api/admin/users.
func (h *AdminUsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	out := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		out = append(out, userResponse(&user))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create handles POST /api/admin/users.
func (h *AdminUsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.NewValidationError("name, email, password, role required", nil)
	}

	user, err := h.users.CreateUser(c.Context(), service.UserCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// Update handles PUT /api/admin/users/:id for role and status changes.
func (h *AdminUsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Role == nil && req.Status == nil {
		return apperrors.NewValidationError("role or status required", nil)
	}

	id := c.Params("id")
	var user *domain.User
	var err error
	if req.Role != nil {
		if user, err = h.users.UpdateRole(c.Context(), id, domain.Role(*req.Role)); err != nil {
			return err
		}
	}
	if req.Status != nil {
		if user, err = h.users.UpdateStatus(c.Context(), id, domain.UserStatus(*req.Status)); err != nil {
			return err
		}
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

func userResponse(user *domain.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"status":     user.Status,
		"created_at": user.CreatedAt,
	}
}
