package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// UserService manages dashboard accounts (admin area).
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserCreateInput describes an account creation payload.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// CreateUser registers a new dashboard account with an assigned role.
func (s *UserService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}

	email := NormalizeEmail(input.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes an account's role. The change takes effect on the next
// token issuance; outstanding sessions keep their original role until expiry.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStatus activates or suspends an account.
func (s *UserService) UpdateStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusSuspended {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns accounts ordered by creation time.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.users.List(ctx, limit, offset)
}
