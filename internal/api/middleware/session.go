package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/security"
)

// SessionCookie is the cookie that carries the session token for browsers.
const SessionCookie = "session_token"

const sessionKey = "session"

// SessionTokens verifies session tokens and re-issues ageing ones.
type SessionTokens interface {
	Parse(raw string) (*domain.Session, error)
	Refresh(s *domain.Session) (string, bool, error)
}

type tokenSource int

const (
	fromNone tokenSource = iota
	fromHeader
	fromCookie
)

// Session requires a valid session token, read from a Bearer header or the
// session cookie, and stores the verified session in the context. Cookie
// sessions past their update age get a fresh cookie.
func Session(tokens SessionTokens, cookie CookieOptions, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, src, err := tokenFromRequest(c)
			if err != nil {
				return err
			}
			if src == fromNone {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			session, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			SetSession(c, session)
			slideCookie(c, tokens, cookie, src, log)
			return next(c)
		}
	}
}

// SetSession stores a verified session in the context.
func SetSession(c echo.Context, s *domain.Session) {
	c.Set(sessionKey, s)
}

// SessionFrom returns the session stored by Session or Gate.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	s, ok := c.Get(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// tokenFromRequest prefers the Authorization header. A malformed header is
// an error; an absent one falls back to the cookie.
func tokenFromRequest(c echo.Context) (string, tokenSource, error) {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", fromNone, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return strings.TrimSpace(parts[1]), fromHeader, nil
	}
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value, fromCookie, nil
	}
	return "", fromNone, nil
}

// optionalSession returns the verified session, or nil, and where its token
// came from.
func optionalSession(c echo.Context, tokens SessionTokens) (*domain.Session, tokenSource) {
	raw, src, err := tokenFromRequest(c)
	if err != nil || src == fromNone {
		return nil, fromNone
	}
	s, err := tokens.Parse(raw)
	if err != nil {
		return nil, fromNone
	}
	return s, src
}

var _ SessionTokens = (*security.TokenManager)(nil)
