package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a new mock wired to the test lifecycle.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	args := m.Called(ctx, orderID)

	var order *entity.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*entity.Order)
	}

	return order, args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, ownerID)

	var orders []*entity.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]*entity.Order)
	}

	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)

	var orders []*entity.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]*entity.Order)
	}

	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	args := m.Called(ctx, orderID, status)

	return args.Error(0)
}
