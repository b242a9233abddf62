package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// Cookie returns the HTTP-only session cookie carrying token.
func (o CookieOptions) Cookie(token string) *http.Cookie {
	return o.build(token, int(o.MaxAge.Seconds()))
}

// Expired returns a cookie that makes the browser drop the session.
func (o CookieOptions) Expired() *http.Cookie {
	return o.build("", -1)
}

func (o CookieOptions) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// slideCookie re-issues a cookie session that has passed its update age.
// Failures keep the current token.
func slideCookie(c echo.Context, tokens SessionTokens, cookie CookieOptions, src tokenSource, log zerolog.Logger) {
	if src != fromCookie {
		return
	}
	session, _ := SessionFrom(c)
	raw, refreshed, err := tokens.Refresh(session)
	if err != nil {
		log.Warn().Err(err).Str("user_id", session.UserID).Msg("session refresh failed")
		return
	}
	if refreshed {
		c.SetCookie(cookie.Cookie(raw))
	}
}
