package ports

import (
	"context"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Department and
// Role are only meaningful for the staff portal.
type RegisterInput struct {
	NaturalKey string
	Secret     string
	FullName   string
	Phone      string
	Department domain.Department
	Role       domain.Role
}

// Session is the result of a successful login or registration: the
// sanitized identity plus the freshly issued bearer token for cookie
// placement.
type Session struct {
	Identity *domain.Identity
	Token    string
}

// AuthService is the per-portal authentication contract.
type AuthService interface {
	Login(ctx context.Context, naturalKey, secret string) (*Session, error)
	Register(ctx context.Context, in RegisterInput) (*Session, error)

	// CheckSession resolves a bearer token to its sanitized identity.
	// Returns domain.ErrUnauthenticated when the token resolves to nothing
	// and domain.ErrAccountDeactivated for inactive accounts.
	CheckSession(ctx context.Context, token string) (*domain.Identity, error)

	// CookieName is the portal's session cookie name, distinct per portal.
	CookieName() string
}

// LoginRateLimiter bounds login attempts per portal and natural key.
type LoginRateLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, portal, naturalKey string) (bool, error)

	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, portal, naturalKey string) error
}
