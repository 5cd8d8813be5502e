package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AuthService coordinates credential verification and session issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// NormalizeEmail trims and lower-cases an email for credential lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies credentials and issues a session token. Lookup misses,
// suspended accounts, and hash mismatches all return the same generic
// rejection so callers cannot tell which factor failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Principal, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	principal := auth.Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	token, exp, err := s.tokenMgr.Issue(principal)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &principal, token, exp, nil
}

// Logout no-ops server-side; the session lives only in the client cookie.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password before updating the hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewInvalidCredentials()
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for session wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
