package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ListProductsInput filters and paginates the product listing.
type ListProductsInput struct {
	Category        string `query:"category"`
	Search          string `query:"search"`
	Cursor          string `query:"cursor"`
	Limit           int    `query:"limit"`
	IncludeInactive bool   // Set by admin handlers only, never bound from customers.
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products   []*entity.Product `json:"products"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// SaveProductInput carries the admin-supplied product fields for create and
// update. UnitPrice is a decimal string to keep money exact on the wire.
type SaveProductInput struct {
	ID              string  `json:"id"` // Optional on create; generated when empty.
	Title           string  `json:"title" validate:"required"`
	UnitPrice       string  `json:"unit_price" validate:"required"`
	DiscountPercent int     `json:"discount_percent"`
	Stock           *int    `json:"stock"`
	ImageURL        string  `json:"image_url"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Rating          float64 `json:"rating"`
	Status          string  `json:"status"`
}

// CatalogUsecase is the catalog surface: product resolution and listing for
// customers, plus the administrative CRUD behind the admin panel.
type CatalogUsecase interface {
	// GetProduct resolves a product id to its current record.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts returns a filtered, paginated listing. Customers only see
	// active products.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// CreateProduct adds a new catalog record (admin).
	CreateProduct(ctx context.Context, input *SaveProductInput) (*entity.Product, error)

	// UpdateProduct replaces an existing catalog record (admin).
	UpdateProduct(ctx context.Context, id string, input *SaveProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog record (admin).
	DeleteProduct(ctx context.Context, id string) error
}
