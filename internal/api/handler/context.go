package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/api/middleware"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware. Its
// presence proves the guard ran; a handler reached without it is a routing
// mistake, answered with 401 rather than a panic.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}

// setSessionCookie places the bearer token as an HTTP-only session cookie.
// No Max-Age: token validity is owned by the store, not the cookie.
func setSessionCookie(c echo.Context, name, token string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the portal's session cookie. The stored token
// is deliberately left in place; the next login overwrites it.
func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
