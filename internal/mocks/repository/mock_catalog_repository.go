package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

// NewMockCatalogRepository creates a new mock wired to the test lifecycle.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)

	var product *entity.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*entity.Product)
	}

	return product, args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context, query repository.CatalogQuery) ([]*entity.Product, string, error) {
	args := m.Called(ctx, query)

	var products []*entity.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]*entity.Product)
	}

	return products, args.String(1), args.Error(2)
}

func (m *MockCatalogRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCatalogRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	args := m.Called(ctx, productID, quantity)

	return args.Error(0)
}
