package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// RequireCapability enforces capability-based access control on top of the
// Session middleware. Unknown roles resolve to an empty capability set, so
// the check fails closed.
func RequireCapability(capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(*domain.Identity)
			if identity == nil {
				return domain.ErrUnauthenticated
			}
			if !domain.HasCapability(identity.Role, capability) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
