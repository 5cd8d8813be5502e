package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	principalKey = "auth_principal"
	resolvedKey  = "auth_principal_resolved"
)

// SessionManager resolves the current principal from the session cookie and
// writes/clears that cookie on login/logout. Decode failures are collapsed
// into "not authenticated"; callers never see expired vs tampered.
type SessionManager struct {
	tokens     *TokenManager
	cookieName string
}

// NewSessionManager constructs the manager.
func NewSessionManager(tokens *TokenManager, cookieName string) *SessionManager {
	if cookieName == "" {
		cookieName = "hr_session"
	}
	return &SessionManager{tokens: tokens, cookieName: cookieName}
}

// CookieName returns the session cookie identifier.
func (sm *SessionManager) CookieName() string {
	return sm.cookieName
}

// Tokens exposes the underlying token manager.
func (sm *SessionManager) Tokens() *TokenManager {
	return sm.tokens
}

// Principal returns the authenticated principal for this request, or false
// when the cookie is absent or its token does not validate. The result is
// memoized in request locals so repeated calls decode at most once.
func (sm *SessionManager) Principal(c *fiber.Ctx) (*Principal, bool) {
	if c.Locals(resolvedKey) != nil {
		p, ok := c.Locals(principalKey).(*Principal)
		return p, ok && p != nil
	}
	c.Locals(resolvedKey, true)

	raw := c.Cookies(sm.cookieName)
	if raw == "" {
		return nil, false
	}
	principal, err := sm.tokens.Parse(raw)
	if err != nil {
		return nil, false
	}
	c.Locals(principalKey, principal)
	return principal, true
}

// SetCookie writes the session cookie for an issued token.
func (sm *SessionManager) SetCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     sm.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie. The server holds no session store,
// so discarding the cookie is the whole sign-out.
func (sm *SessionManager) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sm.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
