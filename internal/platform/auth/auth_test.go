package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestAuth(t *testing.T) (*Registry, *TokenService) {
	t.Helper()
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return reg, NewTokenService("test-secret", time.Hour)
}

func TestRegistry_Authenticate(t *testing.T) {
	reg, _ := newTestAuth(t)

	u, err := reg.Authenticate("admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != "admin" {
		t.Errorf("expected admin role, got %q", u.Role)
	}

	if _, err := reg.Authenticate("admin", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := reg.Authenticate("nobody", "admin123"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	_, tokens := newTestAuth(t)

	raw, err := tokens.Issue(User{Username: "doctor", FullName: "Dr. Sarah Johnson", Role: "doctor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "doctor" || claims.Role != "doctor" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_RejectsForgedToken(t *testing.T) {
	_, tokens := newTestAuth(t)
	other := NewTokenService("other-secret", time.Hour)

	raw, _ := other.Issue(User{Username: "admin", Role: "admin"})
	if _, err := tokens.Verify(raw); err == nil {
		t.Error("expected verification to fail for token signed with another secret")
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)
	raw, _ := tokens.Issue(User{Username: "staff", Role: "staff"})
	if _, err := tokens.Verify(raw); err == nil {
		t.Error("expected verification to fail for expired token")
	}
}

func TestProtect(t *testing.T) {
	_, tokens := newTestAuth(t)
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// No header
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if err := Protect(tokens)(ok)(c); err == nil {
		t.Error("expected error without authorization header")
	}

	// Not a bearer token
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	c = e.NewContext(req, httptest.NewRecorder())
	if err := Protect(tokens)(ok)(c); err == nil {
		t.Error("expected error for non-bearer header")
	}

	// Valid token
	raw, _ := tokens.Issue(User{Username: "staff", Role: "staff"})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	c = e.NewContext(req, httptest.NewRecorder())
	if err := Protect(tokens)(ok)(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if role, _ := c.Get("role").(string); role != "staff" {
		t.Errorf("expected role in context, got %q", role)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set("role", "staff")
	err := RequireRole("admin")(ok)(c)
	httpErr, isHTTP := err.(*echo.HTTPError)
	if !isHTTP || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrong role, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set("role", "admin")
	if err := RequireRole("admin")(ok)(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandler_Login(t *testing.T) {
	reg, tokens := newTestAuth(t)
	h := NewHandler(reg, tokens)
	e := echo.New()

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token in response")
	}
	if resp.User.Username != "admin" {
		t.Errorf("expected user echo, got %+v", resp.User)
	}
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	reg, tokens := newTestAuth(t)
	h := NewHandler(reg, tokens)
	e := echo.New()

	body := `{"username":"admin","password":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Login(c)
	httpErr, isHTTP := err.(*echo.HTTPError)
	if !isHTTP || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
