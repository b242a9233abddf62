package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopfront/admin-api/internal/core/domain"
)

// DefaultSessionTTL matches the 30 day session lifetime of the dashboard.
const DefaultSessionTTL = 30 * 24 * time.Hour

// DefaultUpdateAge is how old a token gets before Refresh replaces it.
const DefaultUpdateAge = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the payload of a session token.
type Claims struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HS256 session tokens.
type TokenManager struct {
	secret    []byte
	ttl       time.Duration
	updateAge time.Duration
	now       func() time.Time
}

// TokenOption customises a TokenManager.
type TokenOption func(*TokenManager)

// WithUpdateAge sets how old a token may get before it is re-issued.
// Non-positive values keep the default.
func WithUpdateAge(d time.Duration) TokenOption {
	return func(m *TokenManager) {
		if d > 0 {
			m.updateAge = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) { m.now = now }
}

func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	m := &TokenManager{secret: []byte(secret), ttl: ttl, updateAge: DefaultUpdateAge, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue returns a signed token carrying the user's id and role.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the session it carries.
func (m *TokenManager) Parse(raw string) (*domain.Session, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	s := &domain.Session{
		UserID:    claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}

// Refresh re-issues the token behind s once it is older than the update age,
// so an active session keeps sliding forward. It reports false while the
// current token is still fresh.
func (m *TokenManager) Refresh(s *domain.Session) (string, bool, error) {
	if s == nil || m.now().Sub(s.IssuedAt) < m.updateAge {
		return "", false, nil
	}
	raw, err := m.Issue(&domain.User{ID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role})
	if err != nil {
		return "", false, err
	}
	return raw, true, nil
}
