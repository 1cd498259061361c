package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

type stubChecker struct {
	cookie   string
	sessions map[string]*domain.Identity
}

func (s *stubChecker) CheckSession(_ context.Context, token string) (*domain.Identity, error) {
	if identity, ok := s.sessions[token]; ok {
		return identity, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (s *stubChecker) CookieName() string { return s.cookie }

func sessionRequest(t *testing.T, checker SessionChecker, cookie *http.Cookie) (*domain.Identity, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *domain.Identity
	handler := Session(checker)(func(c echo.Context) error {
		seen, _ = c.Get(IdentityKey).(*domain.Identity)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return seen, err
}

func TestSession_ValidCookie(t *testing.T) {
	checker := &stubChecker{
		cookie: "guest_session",
		sessions: map[string]*domain.Identity{
			"tok-1": {ID: "g-1", Email: "a@b.com", Role: domain.Role("guest")},
		},
	}

	identity, err := sessionRequest(t, checker, &http.Cookie{Name: "guest_session", Value: "tok-1"})
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if identity == nil || identity.ID != "g-1" {
		t.Fatalf("identity not injected into context: %+v", identity)
	}
}

func TestSession_Rejections(t *testing.T) {
	checker := &stubChecker{cookie: "guest_session", sessions: map[string]*domain.Identity{}}

	cases := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"empty value", &http.Cookie{Name: "guest_session", Value: ""}},
		{"unknown token", &http.Cookie{Name: "guest_session", Value: "stale"}},
		{"wrong portal cookie", &http.Cookie{Name: "staff_session", Value: "tok-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sessionRequest(t, checker, tc.cookie); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestSession_PropagatesCheckerError(t *testing.T) {
	checker := &deactivatedChecker{}
	if _, err := sessionRequest(t, checker, &http.Cookie{Name: "staff_session", Value: "tok"}); !errors.Is(err, domain.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
}

type deactivatedChecker struct{}

func (deactivatedChecker) CheckSession(context.Context, string) (*domain.Identity, error) {
	return nil, domain.ErrAccountDeactivated
}

func (deactivatedChecker) CookieName() string { return "staff_session" }
