package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// IdentityKey is the echo context key under which the Session middleware
// stores the authenticated identity.
const IdentityKey = "identity"

// SessionChecker is the slice of the portal authenticator the guard needs:
// resolve a cookie token to an identity, and name the cookie to read.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (*domain.Identity, error)
	CookieName() string
}

// Session extracts the portal's session cookie, resolves it to an identity,
// and injects the identity into the request context. Requests without a
// resolvable, active identity are rejected; capability checks are layered
// separately (see RequireCapability).
func Session(auth SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName())
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			identity, err := auth.CheckSession(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
