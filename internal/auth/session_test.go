package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
)

func TestSessionPrincipalMemoized(t *testing.T) {
	sessions := NewSessionManager(NewTokenManager("test-secret", time.Hour), "hr_session")

	token, _, err := sessions.Tokens().Issue(Principal{
		ID: "u1", Email: "user@example.com", Name: "User", Role: domain.RoleEmployee,
	})
	require.NoError(t, err)

	app := fiber.New()
	var first, second *Principal
	app.Get("/probe", func(c *fiber.Ctx) error {
		first, _ = sessions.Principal(c)
		second, _ = sessions.Principal(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "hr_session", Value: token})
	_, err = app.Test(req)
	require.NoError(t, err)

	require.NotNil(t, first)
	assert.Equal(t, "user@example.com", first.Email)
	assert.Same(t, first, second, "second lookup must reuse the decoded principal")
}

func TestSessionPrincipalAbsentWithoutCookie(t *testing.T) {
	sessions := NewSessionManager(NewTokenManager("test-secret", time.Hour), "hr_session")

	app := fiber.New()
	var ok bool
	app.Get("/probe", func(c *fiber.Ctx) error {
		_, ok = sessions.Principal(c)
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionDecodeFailureCollapsesToAbsent(t *testing.T) {
	sessions := NewSessionManager(NewTokenManager("test-secret", time.Hour), "hr_session")

	expired := NewTokenManager("test-secret", time.Hour)
	expired.ttl = -time.Minute
	expiredToken, _, err := expired.Issue(Principal{ID: "u1", Email: "u@example.com", Role: domain.RoleViewer})
	require.NoError(t, err)

	app := fiber.New()
	var ok bool
	app.Get("/probe", func(c *fiber.Ctx) error {
		_, ok = sessions.Principal(c)
		return c.SendString("ok")
	})

	for _, value := range []string{"garbage", expiredToken} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "hr_session", Value: value})
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.False(t, ok, "cookie %q", value)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	sessions := NewSessionManager(NewTokenManager("test-secret", time.Hour), "hr_session")

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		sessions.SetCookie(c, "token-value", time.Now().Add(time.Hour))
		return c.SendString("ok")
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		sessions.ClearCookie(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "hr_session", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.NoError(t, err)
	cookies = resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}
