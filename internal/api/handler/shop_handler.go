package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/admin-api/internal/core/ports"
)

// storefrontLimit is the number of products shown on the public shop page.
const storefrontLimit = 100

// ShopHandler serves the public storefront.
type ShopHandler struct {
	service ports.ProductService
}

func NewShopHandler(service ports.ProductService) *ShopHandler {
	return &ShopHandler{service: service}
}

// List handles GET /shop: the newest products, no search.
//
// @Summary      Storefront listing
// @Tags         shop
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Router       /shop [get]
func (h *ShopHandler) List(c echo.Context) error {
	res, err := h.service.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Page:  1,
		Limit: storefrontLimit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: res.Products, Pagination: res.Pagination})
}

// Detail handles GET /shop/:id.
//
// @Summary      Storefront product detail
// @Tags         shop
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /shop/{id} [get]
func (h *ShopHandler) Detail(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}
