// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
)

// MockCartRepository is a mock implementation of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

// NewMockCartRepository creates a new mock wired to the test lifecycle.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) Get(ctx context.Context, ownerKey string) (*entity.Cart, error) {
	args := m.Called(ctx, ownerKey)

	var cart *entity.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*entity.Cart)
	}

	return cart, args.Error(1)
}

func (m *MockCartRepository) Set(ctx context.Context, cart *entity.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, ownerKey string) error {
	args := m.Called(ctx, ownerKey)

	return args.Error(0)
}
