package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/api/metrics"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

// GuestAuthHandler serves the guest portal's auth endpoints. Guests log in
// with an email address.
type GuestAuthHandler struct {
	svc ports.AuthService
}

func NewGuestAuthHandler(svc ports.AuthService) *GuestAuthHandler {
	return &GuestAuthHandler{svc: svc}
}

// Register creates a guest account and opens a session.
//
// @Summary      Register a guest account
// @Tags         guest-auth
// @Accept       json
// @Produce      json
// @Param        body  body      guestRegisterRequest  true  "Guest registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/guest/register [post]
func (h *GuestAuthHandler) Register(c echo.Context) error {
	var req guestRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.svc.Register(c.Request().Context(), ports.RegisterInput{
		NaturalKey: req.Email,
		Secret:     req.Password,
		FullName:   req.FullName,
		Phone:      req.Phone,
	})
	metrics.RegistrationsTotal.WithLabelValues(string(domain.PortalGuest), registerResult(err)).Inc()
	if err != nil {
		return err
	}

	setSessionCookie(c, h.svc.CookieName(), sess.Token)
	return c.JSON(http.StatusCreated, authResponse{User: sess.Identity})
}

// Login authenticates a guest and rotates the session token.
//
// @Summary      Guest login
// @Tags         guest-auth
// @Accept       json
// @Produce      json
// @Param        body  body      guestLoginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/guest/login [post]
func (h *GuestAuthHandler) Login(c echo.Context) error {
	var req guestLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(string(domain.PortalGuest), loginResult(err)).Inc()
	if err != nil {
		return err
	}

	setSessionCookie(c, h.svc.CookieName(), sess.Token)
	return c.JSON(http.StatusOK, authResponse{User: sess.Identity})
}

// Logout clears the session cookie. It never fails; the stored token stays
// valid until the next login overwrites it.
func (h *GuestAuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.svc.CookieName())
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Session returns the identity behind the current session cookie.
func (h *GuestAuthHandler) Session(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	metrics.SessionChecksTotal.WithLabelValues(string(domain.PortalGuest), "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{User: identity})
}

// StaffAuthHandler serves the staff and admin portals, which share the
// username login shape. Staff registrations carry a department and role;
// admin registrations do not.
type StaffAuthHandler struct {
	svc          ports.AuthService
	portal       domain.Portal
	departmental bool
}

func NewStaffAuthHandler(svc ports.AuthService, portal domain.Portal, departmental bool) *StaffAuthHandler {
	return &StaffAuthHandler{svc: svc, portal: portal, departmental: departmental}
}

// Register creates a staff or admin account and opens a session.
//
// @Summary      Register a staff or admin account
// @Tags         staff-auth
// @Accept       json
// @Produce      json
// @Param        body  body      staffRegisterRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/staff/register [post]
func (h *StaffAuthHandler) Register(c echo.Context) error {
	in, err := h.bindRegister(c)
	if err != nil {
		return err
	}

	sess, err := h.svc.Register(c.Request().Context(), in)
	metrics.RegistrationsTotal.WithLabelValues(string(h.portal), registerResult(err)).Inc()
	if err != nil {
		return err
	}

	setSessionCookie(c, h.svc.CookieName(), sess.Token)
	return c.JSON(http.StatusCreated, authResponse{User: sess.Identity})
}

func (h *StaffAuthHandler) bindRegister(c echo.Context) (ports.RegisterInput, error) {
	if h.departmental {
		var req staffRegisterRequest
		if err := c.Bind(&req); err != nil {
			return ports.RegisterInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return ports.RegisterInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return ports.RegisterInput{
			NaturalKey: req.Username,
			Secret:     req.Password,
			FullName:   req.FullName,
			Phone:      req.Phone,
			Department: domain.Department(req.Department),
			Role:       domain.Role(req.Role),
		}, nil
	}

	var req adminRegisterRequest
	if err := c.Bind(&req); err != nil {
		return ports.RegisterInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.RegisterInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.RegisterInput{
		NaturalKey: req.Username,
		Secret:     req.Password,
		FullName:   req.FullName,
		Phone:      req.Phone,
	}, nil
}

// Login authenticates a staff or admin account.
//
// @Summary      Staff or admin login
// @Tags         staff-auth
// @Accept       json
// @Produce      json
// @Param        body  body      staffLoginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/staff/login [post]
func (h *StaffAuthHandler) Login(c echo.Context) error {
	var req staffLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	metrics.LoginsTotal.WithLabelValues(string(h.portal), loginResult(err)).Inc()
	if err != nil {
		return err
	}

	setSessionCookie(c, h.svc.CookieName(), sess.Token)
	return c.JSON(http.StatusOK, authResponse{User: sess.Identity})
}

// Logout clears the session cookie; never fails.
func (h *StaffAuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.svc.CookieName())
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Session returns the identity behind the current session cookie.
func (h *StaffAuthHandler) Session(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	metrics.SessionChecksTotal.WithLabelValues(string(h.portal), "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{User: identity})
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrMissingCredentials):
		return "invalid"
	case errors.Is(err, domain.ErrAccountDeactivated):
		return "deactivated"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "rate_limited"
	default:
		return "error"
	}
}

func registerResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrMissingCredentials):
		return "invalid"
	default:
		return "error"
	}
}
