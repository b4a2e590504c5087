// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockConflict is returned when an atomic stock decrement would drive
	// stock below zero. The caller lost a race for the remaining units.
	ErrStockConflict = errors.New("insufficient stock for decrement")
)

// CatalogQuery filters and paginates a product listing.
type CatalogQuery struct {
	Category        string // Empty means all categories.
	Search          string // Case-insensitive match against title and description.
	IncludeInactive bool   // Administrative views only.
	Cursor          string // Product id to resume after; empty starts from the beginning.
	Limit           int    // Zero or negative falls back to the repository default.
}

// CatalogRepository defines the standard operations for product persistence.
// The storefront reads the catalog; the only write on the customer path is
// DecrementStock, which must be atomic at the store.
type CatalogRepository interface {
	// FindByID retrieves a single product by its document id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List retrieves products matching the query in stable id order and
	// returns the cursor for the next page, empty when exhausted.
	List(ctx context.Context, query CatalogQuery) ([]*entity.Product, string, error)

	// Create persists a new product record.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product record.
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically subtracts quantity from the product's stock
	// counter, using a store-side transaction rather than read-modify-write.
	// It returns ErrStockConflict when the remaining stock is insufficient,
	// leaving the counter untouched. Untracked stock is a no-op.
	DecrementStock(ctx context.Context, productID string, quantity int) error
}
