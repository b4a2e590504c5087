// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider names accepted by the pubsub configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the order topic.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// RoleAdmin is the role claim required for administrative endpoints.
const RoleAdmin = "admin"

// HeaderGuestKey carries the client-generated identifier of an anonymous
// shopper, taking the place localStorage held in the browser clients.
const HeaderGuestKey = "X-Guest-Key"
