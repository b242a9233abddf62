package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// UploadLimit caps the request body like echo's BodyLimit, but reports an
// oversized body as tooLarge so clients see the same error as for any other
// file over the cap.
func UploadLimit(limit string, tooLarge error) echo.MiddlewareFunc {
	bodyLimit := echomiddleware.BodyLimit(limit)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := bodyLimit(next)
		return func(c echo.Context) error {
			err := limited(c)
			var he *echo.HTTPError
			if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
				return tooLarge
			}
			return err
		}
	}
}
