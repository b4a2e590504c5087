// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// OrderIDGenerator produces order identifiers that are unique with extremely
// high probability across concurrent submissions, without a central sequence.
// Collision probability is negligible, not formally zero; the order store's
// create-if-absent semantics catch the residual case.
type OrderIDGenerator interface {
	// NewOrderID returns a fresh identifier.
	NewOrderID() (string, error)
}
