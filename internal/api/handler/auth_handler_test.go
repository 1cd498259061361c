package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/api/middleware"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

// stubAuthService records the inputs it receives and replies with canned
// sessions or errors.
type stubAuthService struct {
	cookie string

	loginKey    string
	loginSecret string
	loginErr    error

	registered  ports.RegisterInput
	registerErr error

	session *ports.Session
}

func (s *stubAuthService) Login(_ context.Context, naturalKey, secret string) (*ports.Session, error) {
	s.loginKey, s.loginSecret = naturalKey, secret
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.session, nil
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*ports.Session, error) {
	s.registered = in
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.session, nil
}

func (s *stubAuthService) CheckSession(context.Context, string) (*domain.Identity, error) {
	return s.session.Identity, nil
}

func (s *stubAuthService) CookieName() string { return s.cookie }

func guestSession() *ports.Session {
	return &ports.Session{
		Identity: &domain.Identity{ID: "g-1", Email: "ana@example.com", FullName: "Ana Ruiz", IsActive: true},
		Token:    "aabbccdd",
	}
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestGuestRegister_Success(t *testing.T) {
	svc := &stubAuthService{cookie: "guest_session", session: guestSession()}
	h := NewGuestAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/guest/register",
		`{"email":"ana@example.com","password":"secret1","full_name":"Ana Ruiz","phone":"555-0101"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.registered.NaturalKey != "ana@example.com" {
		t.Fatalf("unexpected registration input: %+v", svc.registered)
	}

	ck := sessionCookie(rec, "guest_session")
	if ck == nil || ck.Value != "aabbccdd" {
		t.Fatalf("session cookie not set: %+v", ck)
	}
	if !ck.HttpOnly {
		t.Fatalf("session cookie must be HTTP-only")
	}
	if strings.Contains(rec.Body.String(), "aabbccdd") {
		t.Fatalf("token must never appear in the response body: %s", rec.Body.String())
	}
}

func TestGuestRegister_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret1","full_name":"Ana","phone":"1"}`},
		{"bad email", `{"email":"nope","password":"secret1","full_name":"Ana","phone":"1"}`},
		{"short password", `{"email":"a@b.com","password":"abc","full_name":"Ana","phone":"1"}`},
		{"missing name", `{"email":"a@b.com","password":"secret1","phone":"1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{cookie: "guest_session", session: guestSession()}
			h := NewGuestAuthHandler(svc)
			c, _ := newTestContext(t, http.MethodPost, "/api/guest/register", tc.body)

			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
			if svc.registered.NaturalKey != "" {
				t.Fatalf("service must not be called on invalid payload")
			}
		})
	}
}

func TestGuestLogin(t *testing.T) {
	svc := &stubAuthService{cookie: "guest_session", session: guestSession()}
	h := NewGuestAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/guest/login",
		`{"email":"ana@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.loginKey != "ana@example.com" || svc.loginSecret != "secret1" {
		t.Fatalf("credentials not forwarded: %q / %q", svc.loginKey, svc.loginSecret)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.User == nil || body.User.Email != "ana@example.com" {
		t.Fatalf("unexpected user payload: %+v", body.User)
	}
}

func TestGuestLogin_ErrorPassthrough(t *testing.T) {
	svc := &stubAuthService{cookie: "guest_session", loginErr: domain.ErrInvalidCredentials}
	h := NewGuestAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/guest/login",
		`{"email":"ana@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if ck := sessionCookie(rec, "guest_session"); ck != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestGuestLogout_ClearsCookie(t *testing.T) {
	svc := &stubAuthService{cookie: "guest_session"}
	h := NewGuestAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/guest/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ck := sessionCookie(rec, "guest_session")
	if ck == nil || ck.MaxAge >= 0 || ck.Value != "" {
		t.Fatalf("logout must expire the cookie, got %+v", ck)
	}
}

func TestStaffRegister_Departmental(t *testing.T) {
	svc := &stubAuthService{
		cookie: "staff_session",
		session: &ports.Session{
			Identity: &domain.Identity{ID: "s-1", Username: "jlopez", IsActive: true},
			Token:    "tok-staff",
		},
	}
	h := NewStaffAuthHandler(svc, domain.PortalStaff, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/staff/register",
		`{"username":"jlopez","password":"secret1","full_name":"J Lopez","department":"front_desk","role":"receptionist"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.registered.Department != domain.DepartmentFrontDesk || svc.registered.Role != domain.RoleReceptionist {
		t.Fatalf("department/role not forwarded: %+v", svc.registered)
	}

	// Department and role are mandatory on the staff portal.
	c, _ = newTestContext(t, http.MethodPost, "/api/staff/register",
		`{"username":"x","password":"secret1","full_name":"X"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminRegister_NoDepartment(t *testing.T) {
	svc := &stubAuthService{
		cookie: "admin_session",
		session: &ports.Session{
			Identity: &domain.Identity{ID: "a-1", Username: "root", IsActive: true},
			Token:    "tok-admin",
		},
	}
	h := NewStaffAuthHandler(svc, domain.PortalAdmin, false)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/register",
		`{"username":"root","password":"secret1","full_name":"Site Admin"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.registered.Department != "" || svc.registered.Role != "" {
		t.Fatalf("admin registration must not carry department or role: %+v", svc.registered)
	}
}

func TestSessionEndpoint(t *testing.T) {
	svc := &stubAuthService{cookie: "guest_session", session: guestSession()}
	h := NewGuestAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/guest/session", "")
	c.Set(middleware.IdentityKey, guestSession().Identity)

	if err := h.Session(c); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Reached without the middleware: routing mistake, answered with 401.
	c, _ = newTestContext(t, http.MethodGet, "/api/guest/session", "")
	err := h.Session(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
