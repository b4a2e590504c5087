// Package usecase defines the application's use case interfaces and their
// input/output DTOs. The delivery layer depends on these interfaces, never on
// the implementations in usecase/impl.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// AddItemInput is the payload for adding a product to the cart.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// SetQuantityInput is the payload for replacing a line's quantity.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartView bundles the cart with its derived totals for the rendering layer.
type CartView struct {
	Cart   *entity.Cart   `json:"cart"`
	Totals pricing.Totals `json:"totals"`
}

// CartUsecase is the Cart Ledger: it maintains the authoritative list of
// items an owner intends to buy and computes derived totals. Mutations are
// applied to the in-memory cart first and mirrored to persistence after.
type CartUsecase interface {
	// GetCart loads the owner's cart, returning an empty one when none has
	// been persisted yet.
	GetCart(ctx context.Context, ownerKey string) (*CartView, error)

	// AddItem adds quantity units of the product (default 1), snapshotting
	// the current effective price for new lines.
	AddItem(ctx context.Context, ownerKey string, input *AddItemInput) (*CartView, error)

	// RemoveItem removes the product's line; absent lines are a no-op.
	RemoveItem(ctx context.Context, ownerKey, productID string) (*CartView, error)

	// SetQuantity replaces the line's quantity; a quantity below 1 removes
	// the line instead.
	SetQuantity(ctx context.Context, ownerKey, productID string, quantity int) (*CartView, error)

	// Totals computes the monetary summary without mutating anything.
	Totals(ctx context.Context, ownerKey string) (pricing.Totals, error)

	// MergeCarts reconciles a guest cart into the authenticated user's cart
	// on login, summing quantities for lines present in both. The guest cart
	// is cleared afterwards.
	MergeCarts(ctx context.Context, guestKey, userKey string) (*CartView, error)
}
