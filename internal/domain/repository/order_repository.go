// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists is returned when creating an order whose id is
	// already taken. Callers regenerate the id and retry.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// OrderRepository defines the operations for order persistence. Orders are
// immutable once created; only the status field is ever updated.
type OrderRepository interface {
	// Create persists a new order record, failing with ErrOrderAlreadyExists
	// if the order id is already in use.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its id.
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// ListByOwner retrieves the owner's orders, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Order, error)

	// ListAll retrieves every order, newest first, for administrative views.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the order's status. A plain field write with no side
	// effects on stock or carts.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
}
