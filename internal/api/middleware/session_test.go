package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/security"
)

const testSecret = "secret"

var testCookie = CookieOptions{MaxAge: time.Hour}

func testTokens() *security.TokenManager {
	return security.NewTokenManager(testSecret, 30*24*time.Hour)
}

func issue(t *testing.T, role string) string {
	t.Helper()
	return issueAt(t, role, time.Now())
}

// issueAt mints a 30 day token as if it had been issued at the given time.
func issueAt(t *testing.T, role string, at time.Time) string {
	t.Helper()
	m := security.NewTokenManager(testSecret, 30*24*time.Hour, security.WithClock(func() time.Time { return at }))
	tok, err := m.Issue(&domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func sessionCookieOf(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			return ck
		}
	}
	return nil
}

func runSession(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *domain.Session, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Session
	called := false
	handler := Session(testTokens(), testCookie, zerolog.Nop())(func(c echo.Context) error {
		called = true
		got, _ = SessionFrom(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, got, called
}

func TestSession_BearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, domain.RoleAdmin))

	rec, session, called := runSession(t, req)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected next to run with 200, got %d", rec.Code)
	}
	if session.UserID != "user-1" || session.Role != domain.RoleAdmin || session.Email != "alice@example.com" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestSession_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: issue(t, domain.RoleUser)})

	rec, session, called := runSession(t, req)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected next to run with 200, got %d", rec.Code)
	}
	if session.Role != domain.RoleUser {
		t.Fatalf("unexpected role %q", session.Role)
	}
}

func TestSession_Rejections(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, security.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, _ := expired.SignedString([]byte(testSecret))

	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, security.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))

	cases := map[string]string{
		"missing":         "",
		"wrong scheme":    "Token abc",
		"garbage":         "Bearer not-a-token",
		"expired":         "Bearer " + expiredToken,
		"wrong signature": "Bearer " + forged,
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec, _, called := runSession(t, req)
		if called {
			t.Errorf("%s: next must not run", name)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}

func TestSession_SlidesAgedCookie(t *testing.T) {
	old := issueAt(t, domain.RoleUser, time.Now().Add(-48*time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: old})
	rec, session, called := runSession(t, req)
	if !called || session == nil {
		t.Fatalf("expected next to run, got %d", rec.Code)
	}

	ck := sessionCookieOf(rec)
	if ck == nil || ck.Value == "" || ck.Value == old {
		t.Fatalf("expected a re-issued session cookie, got %+v", ck)
	}
	if !ck.HttpOnly || ck.MaxAge != 3600 {
		t.Fatalf("unexpected cookie attributes %+v", ck)
	}

	fresh, err := testTokens().Parse(ck.Value)
	if err != nil {
		t.Fatalf("re-issued token rejected: %v", err)
	}
	if fresh.UserID != "user-1" || fresh.Role != domain.RoleUser || !fresh.ExpiresAt.After(session.ExpiresAt) {
		t.Fatalf("re-issued token should extend the same session: old %+v new %+v", session, fresh)
	}
}

func TestSession_KeepsFreshCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: issueAt(t, domain.RoleUser, time.Now().Add(-time.Hour))})

	rec, _, called := runSession(t, req)
	if !called {
		t.Fatal("expected next to run")
	}
	if ck := sessionCookieOf(rec); ck != nil {
		t.Fatalf("a fresh session must not be re-issued, got %+v", ck)
	}
}

func TestSession_BearerIsNotReissuedAsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueAt(t, domain.RoleUser, time.Now().Add(-48*time.Hour)))

	rec, _, called := runSession(t, req)
	if !called {
		t.Fatal("expected next to run")
	}
	if ck := sessionCookieOf(rec); ck != nil {
		t.Fatalf("bearer callers must not get a cookie, got %+v", ck)
	}
}
