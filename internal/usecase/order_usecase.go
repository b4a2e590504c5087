package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SubmitOrderInput is the checkout form payload.
type SubmitOrderInput struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

// SubmitOrderOutput is the result of a successful submission. The order is
// durably written by the time this is returned; Warnings reports follow-up
// failures (cart clear, stock decrement) that do not invalidate the order.
type SubmitOrderOutput struct {
	Order *entity.Order `json:"order"`

	// StockConflicts lists product ids whose atomic decrement lost the race
	// for the last units. The order stands; stock correction is an
	// administrative follow-up.
	StockConflicts []string `json:"stock_conflicts,omitempty"`

	// Warnings lists non-fatal post-commit failures in human-readable form.
	Warnings []string `json:"warnings,omitempty"`
}

// UpdateOrderStatusInput is the administrative status update payload.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase is the Order Compiler: it freezes a cart snapshot plus
// shipping details into an immutable order and triggers inventory adjustment.
type OrderUsecase interface {
	// SubmitOrder validates the form, compiles the owner's cart into an
	// order with a fresh collision-resistant id, persists it, clears the
	// cart and decrements stock. Any failure before the order is durably
	// written leaves the cart untouched; failures after it are reported in
	// the output but never roll the order back.
	SubmitOrder(ctx context.Context, ownerKey string, input *SubmitOrderInput) (*SubmitOrderOutput, error)

	// GetOrder retrieves one order. A non-admin caller only sees their own.
	GetOrder(ctx context.Context, ownerID, orderID string) (*entity.Order, error)

	// ListOrders retrieves the owner's orders, newest first.
	ListOrders(ctx context.Context, ownerID string) ([]*entity.Order, error)

	// ListAllOrders retrieves every order for the admin panel.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus sets an order's status. Any of the known statuses
	// may be set at any time; transitions are deliberately unguarded.
	UpdateOrderStatus(ctx context.Context, orderID string, input *UpdateOrderStatusInput) (*entity.Order, error)
}
