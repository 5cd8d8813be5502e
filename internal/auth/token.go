package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

// Principal is the authenticated identity carried by a session token.
// It is immutable for the life of the token; role edits made by an admin
// only take effect when the next token is issued.
type Principal struct {
	ID    string
	Email string
	Name  string
	Role  domain.Role
}

// TokenManager issues and validates signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims describes the session token payload.
type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a session token for the principal.
func (tm *TokenManager) Issue(p Principal) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: p.Email,
		Name:  p.Name,
		Role:  p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates a token and returns the principal it carries. Tokens are
// binary valid or invalid: a bad signature, malformed payload, expiry, or an
// unknown role string all yield an error.
func (tm *TokenManager) Parse(tokenStr string) (*Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if !domain.ValidRole(claims.Role) {
		return nil, errors.New("unknown role in token")
	}
	return &Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
