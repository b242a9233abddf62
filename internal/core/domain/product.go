package domain

import "time"

// Product is a catalog entry shown on the dashboard and the storefront.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPatch carries the fields of a partial update. Nil fields are left
// untouched by the store.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Description *string
	Image       *string
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil && p.Image == nil
}
