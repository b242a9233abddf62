package ports

import (
	"context"

	"github.com/shopfront/admin-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for a catalog page.
type ListProductsFilter struct {
	Search string // optional: case-insensitive substring on name or description
	Page   int    // 1-based
	Limit  int
}

// Skip is the number of documents before the requested page.
func (f ListProductsFilter) Skip() int64 {
	return int64(f.Page-1) * int64(f.Limit)
}

// ProductRepository defines persistence operations for products.
// Unknown or malformed IDs are reported as domain.ErrProductNotFound.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns one page ordered by creation time (newest first) and the
	// total number of documents matching the same filter.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	// Update applies the non-nil fields of patch and refreshes updatedAt.
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
