package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/core/security"
)

// Gate protects page trees. Instead of 401/403 it redirects: callers without
// a valid session go to the login page, callers lacking the role the path
// demands go to the dashboard. Like Session it slides cookie sessions.
func Gate(tokens SessionTokens, cookie CookieOptions, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, src := optionalSession(c, tokens)

			decision := security.Authorize(session, security.RequiredRole(c.Request().URL.Path))
			if !decision.Allowed() {
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			SetSession(c, session)
			slideCookie(c, tokens, cookie, src, log)
			return next(c)
		}
	}
}
