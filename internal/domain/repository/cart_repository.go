// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is returned when no cart has been persisted for an owner.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository mirrors the in-memory cart ledger per owner key. The cart in
// memory is authoritative during a session; these writes are the best-effort
// mirror issued after each mutation.
type CartRepository interface {
	// Get retrieves the persisted cart for the owner, or ErrCartNotFound.
	Get(ctx context.Context, ownerKey string) (*entity.Cart, error)

	// Set replaces the persisted cart for cart.OwnerKey.
	Set(ctx context.Context, cart *entity.Cart) error

	// Delete removes the persisted cart for the owner. Deleting an absent
	// cart is not an error.
	Delete(ctx context.Context, ownerKey string) error
}
