package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T, pageLimit int) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	cfg := &config.Config{}
	if pageLimit > 0 {
		cfg.Catalog = &config.CatalogConfig{PageLimit: pageLimit}
	}

	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Config:      cfg,
	})

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 0, nil), nil)

	product, err := fx.service.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts_ClampsLimit(t *testing.T) {
	fx := createTestCatalogService(t, 10)
	ctx := context.Background()

	fx.catalogRepo.On("List", ctx, repository.CatalogQuery{Category: "snacks", Limit: 10}).
		Return([]*entity.Product{activeProduct("p1", 100, 0, nil)}, "p1", nil)

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "snacks", Limit: 500})
	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.NextCursor)
}

func TestCatalogService_ListProducts_ZeroLimitUsesDefault(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	fx.catalogRepo.On("List", ctx, repository.CatalogQuery{Limit: 20}).
		Return([]*entity.Product{}, "", nil)

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Empty(t, page.NextCursor)
}

func TestCatalogService_CreateProduct_GeneratesIDAndTimestamps(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	var created *entity.Product
	fx.catalogRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Product)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{
		Title:           "Widget",
		UnitPrice:       "199.99",
		DiscountPercent: 5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "199.99", product.UnitPrice.String())
	assert.Equal(t, entity.ProductStatusActive, product.Status)
	assert.False(t, product.CreatedAt.IsZero())
	require.NotNil(t, created)
	assert.Equal(t, product.ID, created.ID)
}

func TestCatalogService_CreateProduct_MalformedPrice(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.SaveProductInput{Title: "Widget", UnitPrice: "cheap"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProduct)
}

func TestCatalogService_UpdateProduct_PreservesCreatedAt(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	existing := activeProduct("p1", 100, 0, nil)
	fx.catalogRepo.On("FindByID", ctx, "p1").Return(existing, nil)

	var updated *entity.Product
	fx.catalogRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Product)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, "p1", &usecase.SaveProductInput{
		Title:     "Widget v2",
		UnitPrice: "120",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, existing.CreatedAt, product.CreatedAt)
	require.NotNil(t, updated)
	assert.Equal(t, "Widget v2", updated.Title)
}

func TestCatalogService_UpdateProduct_UnknownID(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, "missing", &usecase.SaveProductInput{Title: "x", UnitPrice: "1"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t, 0)
	ctx := context.Background()

	fx.catalogRepo.On("Delete", ctx, "p1").Return(nil)
	require.NoError(t, fx.service.DeleteProduct(ctx, "p1"))

	fx.catalogRepo.On("Delete", ctx, "p2").Return(errors.New("backend down"))
	err := fx.service.DeleteProduct(ctx, "p2")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
}
