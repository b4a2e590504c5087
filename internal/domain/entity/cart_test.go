package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
)

func intPtr(v int) *int {
	return &v
}

func testProduct(id string, price int64, discountPercent int, stock *int) *Product {
	return &Product{
		ID:              id,
		Title:           "Product " + id,
		UnitPrice:       decimal.NewFromInt(price),
		DiscountPercent: discountPercent,
		Stock:           stock,
		Status:          ProductStatusActive,
	}
}

func TestCart_AddLine_SnapshotsDiscountedPrice(t *testing.T) {
	cart := NewCart("guest-1")
	product := testProduct("p1", 100, 10, nil)

	require.NoError(t, cart.AddLine(product, 2))

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, "p1", line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "90", line.UnitPriceSnapshot.String())
	assert.Equal(t, "100", line.OriginalUnitPrice.String())
	assert.Equal(t, "180", line.LineTotal().String())
}

func TestCart_AddLine_IncrementsExistingLine(t *testing.T) {
	cart := NewCart("guest-1")
	product := testProduct("p1", 100, 0, nil)

	require.NoError(t, cart.AddLine(product, 1))
	require.NoError(t, cart.AddLine(product, 3))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.Equal(t, 4, cart.TotalQuantity())
}

func TestCart_AddLine_KeepsOriginalSnapshotOnRepeatedAdd(t *testing.T) {
	cart := NewCart("guest-1")

	require.NoError(t, cart.AddLine(testProduct("p1", 100, 10, nil), 1))
	// The catalog price changed between adds; the line keeps the old one.
	require.NoError(t, cart.AddLine(testProduct("p1", 200, 0, nil), 1))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "90", cart.Lines[0].UnitPriceSnapshot.String())
}

func TestCart_AddLine_StockGateCoversCombinedQuantity(t *testing.T) {
	cart := NewCart("guest-1")
	product := testProduct("p1", 100, 0, intPtr(5))

	require.NoError(t, cart.AddLine(product, 3))

	err := cart.AddLine(product, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)

	// The failed add left the cart unchanged.
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCart_AddLine_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart("guest-1")

	err := cart.AddLine(testProduct("p1", 100, 0, nil), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddLine_UntrackedStockIsUnlimited(t *testing.T) {
	cart := NewCart("guest-1")

	require.NoError(t, cart.AddLine(testProduct("p1", 100, 0, nil), 9999))
	assert.Equal(t, 9999, cart.TotalQuantity())
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 100, 0, nil), 1))
	require.NoError(t, cart.AddLine(testProduct("p2", 50, 0, nil), 1))

	cart.RemoveLine("p1")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)

	// Removing an absent line is a no-op.
	cart.RemoveLine("p1")
	assert.Len(t, cart.Lines, 1)
}

func TestCart_SetLineQuantity(t *testing.T) {
	cart := NewCart("guest-1")
	product := testProduct("p1", 100, 0, intPtr(10))
	require.NoError(t, cart.AddLine(product, 2))

	// Replaces, never adds.
	require.NoError(t, cart.SetLineQuantity(product, 7))
	assert.Equal(t, 7, cart.Lines[0].Quantity)

	err := cart.SetLineQuantity(product, 11)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
	assert.Equal(t, 7, cart.Lines[0].Quantity)

	err = cart.SetLineQuantity(testProduct("missing", 10, 0, nil), 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCart_Merge_SumsQuantitiesAndKeepsOlderSnapshots(t *testing.T) {
	userCart := NewCart("user-1")
	require.NoError(t, userCart.AddLine(testProduct("p1", 100, 10, nil), 2))

	guestCart := NewCart("guest-1")
	require.NoError(t, guestCart.AddLine(testProduct("p1", 120, 0, nil), 1))
	require.NoError(t, guestCart.AddLine(testProduct("p2", 50, 0, nil), 4))

	userCart.Merge(guestCart)

	require.Len(t, userCart.Lines, 2)
	assert.Equal(t, 3, userCart.Lines[0].Quantity)
	// The receiving cart's snapshot wins for shared lines.
	assert.Equal(t, "90", userCart.Lines[0].UnitPriceSnapshot.String())
	assert.Equal(t, "p2", userCart.Lines[1].ProductID)
	assert.Equal(t, 4, userCart.Lines[1].Quantity)
}

func TestCart_Merge_NilAndEmptyAreNoOps(t *testing.T) {
	cart := NewCart("user-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 100, 0, nil), 1))

	cart.Merge(nil)
	cart.Merge(NewCart("guest-1"))

	assert.Len(t, cart.Lines, 1)
}

func TestCart_Totals_DiscountedScenario(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 100, 10, nil), 2))

	totals := cart.Totals(pricing.DefaultRules())

	assert.Equal(t, "180", totals.Subtotal.String())
	assert.Equal(t, "20", totals.DiscountTotal.String())
	assert.Equal(t, "60", totals.DeliveryCharge.String())
	assert.Equal(t, "240", totals.Total.String())
}

func TestCart_Totals_FreeDeliveryAboveThreshold(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 1200, 0, nil), 1))

	totals := cart.Totals(pricing.DefaultRules())

	assert.Equal(t, "1200", totals.Subtotal.String())
	assert.True(t, totals.DeliveryCharge.IsZero())
	assert.Equal(t, "1200", totals.Total.String())
}

func TestCart_Totals_FeeAppliedBelowThreshold(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 500, 0, nil), 1))

	totals := cart.Totals(pricing.DefaultRules())

	assert.Equal(t, "500", totals.Subtotal.String())
	assert.Equal(t, "60", totals.DeliveryCharge.String())
	assert.Equal(t, "560", totals.Total.String())
}

func TestCart_Totals_IsPure(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 100, 10, nil), 2))
	rules := pricing.DefaultRules()

	first := cart.Totals(rules)
	second := cart.Totals(rules)

	assert.True(t, first.Total.Equal(second.Total))
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("guest-1")
	require.NoError(t, cart.AddLine(testProduct("p1", 100, 0, nil), 1))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Totals(pricing.DefaultRules()).Subtotal.IsZero())
}
