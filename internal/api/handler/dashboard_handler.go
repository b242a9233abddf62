package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/ports"
)

// UserCounter reports the number of registered users.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardHandler serves the summaries behind the gated dashboard tree.
type DashboardHandler struct {
	products ports.ProductService
	users    UserCounter
}

func NewDashboardHandler(products ports.ProductService, users UserCounter) *DashboardHandler {
	return &DashboardHandler{products: products, users: users}
}

type dashboardResponse struct {
	User         *domain.Session `json:"user"`
	IsAdmin      bool            `json:"isAdmin"`
	ProductCount int64           `json:"productCount"`
}

type adminStatsResponse struct {
	ProductCount int64 `json:"productCount"`
	UserCount    int64 `json:"userCount"`
}

// Overview handles GET /dashboard.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      302  {string}  string  "redirect to /login"
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	n, err := h.products.CountProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{User: s, IsAdmin: s.IsAdmin(), ProductCount: n})
}

// AdminStats handles GET /dashboard/admin, /admin and /api/admin/stats.
//
// @Summary      Admin statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminStatsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.products.CountProducts(ctx)
	if err != nil {
		return err
	}
	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatsResponse{ProductCount: products, UserCount: users})
}
