package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shopfront/admin-api/internal/api/middleware"
	"github.com/shopfront/admin-api/internal/core/domain"
)

// currentSession returns the session placed in the context by the Session
// or Gate middleware.
func currentSession(c echo.Context) (*domain.Session, error) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return s, nil
}
