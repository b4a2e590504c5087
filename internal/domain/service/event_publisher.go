package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle event published for downstream
// consumers (fulfilment dashboards, notification workers).
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"` // constants.EventOrderCreated or EventOrderStatusChanged.
	OrderID    string    `json:"order_id"`
	OwnerID    string    `json:"owner_id"`
	Total      string    `json:"total"` // Decimal string; avoids float drift on the wire.
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue. Publishing is best effort relative to the order itself: a
// failed publish never rolls back a committed order.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
