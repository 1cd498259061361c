package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingCredentials, http.StatusBadRequest},
		{fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrAccountDeactivated, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrIdentityNotFound, http.StatusNotFound},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrRoomNotFound, http.StatusNotFound},
		{domain.ErrDuplicateIdentity, http.StatusConflict},
		{domain.ErrAlreadyClockedIn, http.StatusConflict},
		{domain.ErrNotClockedIn, http.StatusConflict},
		{fmt.Errorf("%w: completed -> pending", domain.ErrInvalidTransition), http.StatusUnprocessableEntity},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{fmt.Errorf("store unavailable: %w: timeout", domain.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{errors.New("something exploded"), http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad body %q: %v", rec.Body.String(), err)
			}
			if body.Error == "" {
				t.Fatalf("error envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandler_NoAccountEnumeration(t *testing.T) {
	// The login flow maps a missing account to ErrInvalidCredentials before it
	// reaches the handler; both paths must render the same body.
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	rec := httptest.NewRecorder()
	handler(domain.ErrInvalidCredentials, e.NewContext(httptest.NewRequest(http.MethodPost, "/api/guest/login", nil), rec))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	want := `{"error":"invalid credentials"}`
	if got := rec.Body.String(); got != want+"\n" && got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("NoContent: %v", err)
	}

	handler(errors.New("late failure"), c)
	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not be overwritten, got %d", rec.Code)
	}
}
