package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopfront/admin-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "665f1c2e9b1e8a0012345678", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	raw, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	s, err := m.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.UserID != "665f1c2e9b1e8a0012345678" || s.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", s)
	}
	if s.Email != "alice@example.com" || s.Name != "Alice" {
		t.Fatalf("unexpected profile claims: %+v", s)
	}
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	m := NewTokenManager("secret", 0)
	if m.TTL() != 30*24*time.Hour {
		t.Fatalf("expected 30 day ttl, got %v", m.TTL())
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	raw, _ := NewTokenManager("secret", time.Hour).Issue(testUser())

	if _, err := NewTokenManager("other", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _ := m.Issue(testUser())

	m.now = time.Now
	if _, err := m.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenManager("secret", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected unsigned token to be rejected, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("raw=%q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestTokenManager_RefreshSlidesExpiry(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	m := NewTokenManager("secret", 30*24*time.Hour, WithClock(func() time.Time { return now }))

	raw, err := m.Issue(testUser())
	if err != nil {
		t.Fatal(err)
	}

	now = start.Add(time.Hour)
	s, err := m.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, refreshed, _ := m.Refresh(s); refreshed {
		t.Fatal("a token younger than the update age must not be re-issued")
	}

	now = start.Add(29 * 24 * time.Hour)
	s, _ = m.Parse(raw)
	fresh, refreshed, err := m.Refresh(s)
	if err != nil || !refreshed {
		t.Fatalf("expected a refreshed token, got %v %v", refreshed, err)
	}

	// Past the original expiry only the refreshed token is still valid.
	now = start.Add(31 * 24 * time.Hour)
	if _, err := m.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("original token should have expired, got %v", err)
	}
	got, err := m.Parse(fresh)
	if err != nil {
		t.Fatalf("refreshed token rejected: %v", err)
	}
	if got.UserID != testUser().ID || got.Role != domain.RoleAdmin || got.Email != "alice@example.com" {
		t.Fatalf("refreshed token lost claims: %+v", got)
	}
}

func TestTokenManager_UpdateAgeOption(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", time.Hour, WithUpdateAge(time.Minute), WithClock(func() time.Time { return now }))

	s := &domain.Session{UserID: "u1", Role: domain.RoleUser, IssuedAt: now.Add(-2 * time.Minute)}
	if _, refreshed, _ := m.Refresh(s); !refreshed {
		t.Fatal("expected refresh past a one minute update age")
	}
	if _, refreshed, _ := m.Refresh(nil); refreshed {
		t.Fatal("nil session must not refresh")
	}
}
