package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

func capabilityRequest(t *testing.T, identity *domain.Identity, capability domain.Capability) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if identity != nil {
		c.Set(IdentityKey, identity)
	}

	handler := RequireCapability(capability)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireCapability(t *testing.T) {
	cases := []struct {
		name       string
		identity   *domain.Identity
		capability domain.Capability
		want       error
	}{
		{"no identity in context", nil, domain.CapManageStaff, domain.ErrUnauthenticated},
		{"admin manages staff", &domain.Identity{Role: domain.RoleAdmin}, domain.CapManageStaff, nil},
		{"receptionist manages bookings", &domain.Identity{Role: domain.RoleReceptionist}, domain.CapManageBookings, nil},
		{"receptionist denied staff management", &domain.Identity{Role: domain.RoleReceptionist}, domain.CapManageStaff, domain.ErrForbidden},
		{"unknown role fails closed", &domain.Identity{Role: domain.Role("intern")}, domain.CapManageBookings, domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := capabilityRequest(t, tc.identity, tc.capability)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
