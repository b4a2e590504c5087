package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int {
	return &v
}

func activeProduct(id string, price int64, discountPercent int, stock *int) *entity.Product {
	return &entity.Product{
		ID:              id,
		Title:           "Product " + id,
		UnitPrice:       decimal.NewFromInt(price),
		DiscountPercent: discountPercent,
		Stock:           stock,
		Status:          entity.ProductStatusActive,
	}
}

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service, err := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		CatalogRepo: catalogRepo,
		Config:      &config.Config{},
		Logger:      testLogger(),
	})
	require.NoError(t, err)

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

func TestCartService_GetCart_AbsentCartIsEmpty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, "guest-1")
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
	assert.True(t, view.Totals.Subtotal.IsZero())
}

func TestCartService_AddItem_SnapshotsPriceAndPersists(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 10, nil), nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)

	var persisted *entity.Cart
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Cart)
		}).
		Return(nil)

	view, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, "90", view.Cart.Lines[0].UnitPriceSnapshot.String())
	assert.Equal(t, "180", view.Totals.Subtotal.String())
	assert.Equal(t, "20", view.Totals.DiscountTotal.String())

	require.NotNil(t, persisted)
	assert.Equal(t, "guest-1", persisted.OwnerKey)
	assert.Equal(t, 2, persisted.TotalQuantity())
}

func TestCartService_AddItem_DefaultsQuantityToOne(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 0, nil), nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cart.TotalQuantity())
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := activeProduct("p1", 100, 0, nil)
	product.Status = entity.ProductStatusInactive
	fx.catalogRepo.On("FindByID", ctx, "p1").Return(product, nil)

	_, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "p1"})
	assert.ErrorIs(t, err, domainerrors.ErrProductInactive)
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 0, intPtr(1)), nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "p1", Quantity: 2})
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
}

func TestCartService_AddItem_PersistFailureRejectsMutation(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 0, nil), nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).Return(errors.New("backend down"))

	_, err := fx.service.AddItem(ctx, "guest-1", &usecase.AddItemInput{ProductID: "p1"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
}

func TestCartService_SetQuantity_BelowOneRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	cart := entity.NewCart("guest-1")
	require.NoError(t, cart.AddLine(activeProduct("p1", 100, 0, nil), 2))
	fx.cartRepo.On("Get", ctx, "guest-1").Return(cart, nil)

	var persisted *entity.Cart
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Cart)
		}).
		Return(nil)

	view, err := fx.service.SetQuantity(ctx, "guest-1", "p1", 0)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
	require.NotNil(t, persisted)
	assert.True(t, persisted.IsEmpty())
}

func TestCartService_SetQuantity_ReplacesQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	cart := entity.NewCart("guest-1")
	require.NoError(t, cart.AddLine(activeProduct("p1", 100, 0, nil), 2))
	fx.cartRepo.On("Get", ctx, "guest-1").Return(cart, nil)
	fx.catalogRepo.On("FindByID", ctx, "p1").Return(activeProduct("p1", 100, 0, nil), nil)
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := fx.service.SetQuantity(ctx, "guest-1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Cart.Lines[0].Quantity)
}

func TestCartService_SetQuantity_MissingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("Get", ctx, "guest-1").Return(entity.NewCart("guest-1"), nil)

	_, err := fx.service.SetQuantity(ctx, "guest-1", "p1", 5)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_RemoveItem_AbsentLineIsNoOp(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("Get", ctx, "guest-1").Return(entity.NewCart("guest-1"), nil)
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := fx.service.RemoveItem(ctx, "guest-1", "p1")
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_MergeCarts_SumsSharedLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userCart := entity.NewCart("user-1")
	require.NoError(t, userCart.AddLine(activeProduct("p1", 100, 10, nil), 2))

	guestCart := entity.NewCart("guest-1")
	require.NoError(t, guestCart.AddLine(activeProduct("p1", 100, 0, nil), 1))
	require.NoError(t, guestCart.AddLine(activeProduct("p2", 50, 0, nil), 3))

	fx.cartRepo.On("Get", ctx, "user-1").Return(userCart, nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(guestCart, nil)

	var persisted *entity.Cart
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Cart)
		}).
		Return(nil)
	fx.cartRepo.On("Delete", ctx, "guest-1").Return(nil)

	view, err := fx.service.MergeCarts(ctx, "guest-1", "user-1")
	require.NoError(t, err)

	require.Len(t, view.Cart.Lines, 2)
	assert.Equal(t, 3, view.Cart.Lines[0].Quantity)
	assert.Equal(t, "90", view.Cart.Lines[0].UnitPriceSnapshot.String())
	assert.Equal(t, 3, view.Cart.Lines[1].Quantity)

	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.OwnerKey)
}

func TestCartService_MergeCarts_NoGuestCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userCart := entity.NewCart("user-1")
	require.NoError(t, userCart.AddLine(activeProduct("p1", 100, 0, nil), 1))

	fx.cartRepo.On("Get", ctx, "user-1").Return(userCart, nil)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.MergeCarts(ctx, "guest-1", "user-1")
	require.NoError(t, err)
	assert.Len(t, view.Cart.Lines, 1)
}

func TestCartService_MergeCarts_GuestDeleteFailureIsNotFatal(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	guestCart := entity.NewCart("guest-1")
	require.NoError(t, guestCart.AddLine(activeProduct("p1", 100, 0, nil), 1))

	fx.cartRepo.On("Get", ctx, "user-1").Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.On("Get", ctx, "guest-1").Return(guestCart, nil)
	fx.cartRepo.On("Set", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	fx.cartRepo.On("Delete", ctx, "guest-1").Return(errors.New("backend down"))

	view, err := fx.service.MergeCarts(ctx, "guest-1", "user-1")
	require.NoError(t, err)
	assert.Len(t, view.Cart.Lines, 1)
}

func TestCartService_Totals(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	cart := entity.NewCart("guest-1")
	require.NoError(t, cart.AddLine(activeProduct("p1", 500, 0, nil), 1))
	fx.cartRepo.On("Get", ctx, "guest-1").Return(cart, nil)

	totals, err := fx.service.Totals(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, "500", totals.Subtotal.String())
	assert.Equal(t, "60", totals.DeliveryCharge.String())
	assert.Equal(t, "560", totals.Total.String())
}
