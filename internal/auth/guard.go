package auth

import (
	"net/url"
	"strings"

	"github.com/spec-kit/hr-service/internal/domain"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

const (
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"
	// LandingPath is where authenticated-but-forbidden requests are sent.
	LandingPath = "/dashboard"
)

// Reasons attached to a deny decision.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)

// Decision is the outcome of a prefix authorization check. It is recomputed
// per request and never persisted.
type Decision struct {
	Allowed  bool
	Reason   string
	Redirect string
}

// exemptPrefixes bypass the guard entirely regardless of authentication state,
// so login and the auth endpoints cannot redirect-loop.
var exemptPrefixes = []string{
	"/login",
	"/auth/",
	"/health/",
	"/static/",
}

// protectedPrefixes require an authenticated principal.
var protectedPrefixes = []string{
	"/dashboard",
	"/employees",
	"/applicants",
	"/leave",
	"/shifts",
	"/calendar",
	"/documents",
	"/announcements",
	"/admin",
	"/api/",
}

// adminPrefixes additionally require the ADMIN role.
var adminPrefixes = []string{
	"/admin",
	"/api/admin",
}

// Exempt reports whether the path bypasses the guard.
func Exempt(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func requiresAuth(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func requiresAdmin(path string) bool {
	for _, prefix := range adminPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Authorize evaluates the prefix rules for a request path. Unauthenticated
// access to a protected path denies with a login redirect carrying the
// original URL as callbackUrl; an authenticated principal without the ADMIN
// role on an admin path denies with a redirect to the landing page instead,
// which is what distinguishes "not logged in" from "logged in but forbidden".
func Authorize(p *Principal, path string) Decision {
	if Exempt(path) {
		return Decision{Allowed: true}
	}
	if !requiresAuth(path) {
		return Decision{Allowed: true}
	}
	if p == nil {
		return Decision{
			Reason:   ReasonUnauthenticated,
			Redirect: LoginPath + "?callbackUrl=" + url.QueryEscape(path),
		}
	}
	if requiresAdmin(path) && p.Role != domain.RoleAdmin {
		return Decision{
			Reason:   ReasonForbidden,
			Redirect: LandingPath,
		}
	}
	return Decision{Allowed: true}
}

// RoleSet is a per-call-site allow-list of roles.
type RoleSet map[domain.Role]struct{}

// Roles builds a RoleSet.
func Roles(roles ...domain.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (rs RoleSet) Contains(r domain.Role) bool {
	_, ok := rs[r]
	return ok
}

// AuthorizeAction decides a single action: allow when the principal's role is
// in the allow-set, otherwise allow when the role is MANAGER and the
// ownership predicate holds. Membership is checked first so the predicate,
// which usually loads the target resource, is never evaluated for roles that
// are always allowed.
func AuthorizeAction(p *Principal, allowed RoleSet, ownership func() bool) error {
	if p == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if allowed.Contains(p.Role) {
		return nil
	}
	if p.Role == domain.RoleManager && ownership != nil && ownership() {
		return nil
	}
	return apperrors.NewForbidden("insufficient role")
}

// OwnerMatch reports whether a resource's stored manager/employee identifier
// refers to the principal. The stored value may be an email address or a
// display name; both are compared in original and lower-cased form.
func OwnerMatch(ident string, p *Principal) bool {
	if p == nil || ident == "" {
		return false
	}
	if ident == p.Email || ident == p.Name {
		return true
	}
	lower := strings.ToLower(ident)
	return lower == strings.ToLower(p.Email) || lower == strings.ToLower(p.Name)
}
