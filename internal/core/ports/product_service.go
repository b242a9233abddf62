package ports

import (
	"context"

	"github.com/shopfront/admin-api/internal/core/domain"
)

// CreateProductInput carries all fields required for a new product.
// Price is a pointer so a missing value can be told apart from zero.
type CreateProductInput struct {
	Name        string   `validate:"required,max=100"`
	Price       *float64 `validate:"required,finite,gt=0"`
	Description string   `validate:"required,max=1000"`
	Image       string   `validate:"required,imageref"`
}

// UpdateProductInput carries a partial update; nil fields are not changed.
type UpdateProductInput struct {
	Name        *string  `validate:"omitempty,min=1,max=100"`
	Price       *float64 `validate:"omitempty,finite,gt=0"`
	Description *string  `validate:"omitempty,min=1,max=1000"`
	Image       *string  `validate:"omitempty,imageref"`
}

// ListProductsInput carries the raw list parameters from the transport layer.
type ListProductsInput struct {
	Search string
	Page   int
	Limit  int
}

// Pagination describes the page returned by ListProducts.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Products   []*domain.Product
	Pagination Pagination
}

// ProductService defines catalog use cases.
type ProductService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int64, error)
}
