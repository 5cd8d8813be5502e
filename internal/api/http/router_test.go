package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			SessionTTLHours: 8,
			SessionCookie:   "hr_session",
			BcryptCost:      4,
		},
	}

	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for email, role := range map[string]domain.Role{
		"admin@example.com":  domain.RoleAdmin,
		"viewer@example.com": domain.RoleViewer,
	} {
		hash, err := auth.HashPassword("s3cret", 4)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), &domain.User{
			Name:         "Test " + string(role),
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			Status:       domain.UserStatusActive,
		}))
	}

	authService := service.NewAuthService(cfg, repo)
	sessions := auth.NewSessionManager(authService.TokenManager(), cfg.Auth.SessionCookie)
	guard := auth.NewMiddleware(sessions)
	userService := service.NewUserService(repo, cfg.Auth.BcryptCost)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), guard, 0)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("test", "dev", nil, nil),
		Pages:         handlers.NewPagesHandler(sessions),
		Auth:          handlers.NewAuthHandler(authService, sessions),
		AdminUsers:    handlers.NewAdminUsersHandler(userService),
		Employees:     handlers.NewEmployeesHandler(service.NewEmployeeService(nil)),
		Applicants:    handlers.NewApplicantsHandler(service.NewApplicantService(nil, nil), sessions),
		Leave:         handlers.NewLeaveHandler(service.NewLeaveService(nil, nil), sessions),
		Shifts:        handlers.NewShiftsHandler(service.NewShiftService(nil, nil)),
		Calendar:      handlers.NewCalendarHandler(service.NewCalendarService(nil), sessions),
		Documents:     handlers.NewDocumentsHandler(service.NewDocumentService(nil), sessions),
		Announcements: handlers.NewAnnouncementsHandler(service.NewAnnouncementService(nil, nil), sessions),
		Dashboard:     handlers.NewDashboardHandler(service.NewDashboardService(nil, nil, nil, nil, zap.NewNop())),
		Guard:         guard,
	})
	return app
}

func loginAs(t *testing.T, app *fiber.App, email string) *nethttp.Cookie {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": "s3cret"})
	require.NoError(t, err)

	req := httptest.NewRequest(nethttp.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "hr_session" {
			return cookie
		}
	}
	t.Fatal("login response missing session cookie")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := newTestApp(t)

	cookie := loginAs(t, app, "admin@example.com")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	app := newTestApp(t)

	for name, creds := range map[string]map[string]string{
		"unknown email":  {"email": "nobody@example.com", "password": "s3cret"},
		"wrong password": {"email": "admin@example.com", "password": "nope"},
	} {
		body, err := json.Marshal(creds)
		require.NoError(t, err)
		req := httptest.NewRequest(nethttp.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, name)

		var payload struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "INVALID_CREDENTIALS", payload.Error.Code, name)
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?callbackUrl=%2Fdashboard", resp.Header.Get("Location"))

	req := httptest.NewRequest(nethttp.MethodGet, "/dashboard", nil)
	req.AddCookie(loginAs(t, app, "viewer@example.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app := newTestApp(t)
	viewerCookie := loginAs(t, app, "viewer@example.com")
	adminCookie := loginAs(t, app, "admin@example.com")

	// Page path redirects to the landing page.
	req := httptest.NewRequest(nethttp.MethodGet, "/admin/users", nil)
	req.AddCookie(viewerCookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	// API path surfaces 403.
	req = httptest.NewRequest(nethttp.MethodGet, "/api/admin/users/", nil)
	req.AddCookie(viewerCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	// Admin passes through to the handler.
	req = httptest.NewRequest(nethttp.MethodGet, "/api/admin/users/", nil)
	req.AddCookie(adminCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/leave/", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsPrincipal(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/auth/me", nil)
	req.AddCookie(loginAs(t, app, "admin@example.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "admin@example.com", payload.Data.Email)
	assert.Equal(t, "ADMIN", payload.Data.Role)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/auth/logout", nil)
	req.AddCookie(loginAs(t, app, "admin@example.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestHealthExemptFromGuard(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
