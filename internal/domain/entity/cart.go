package entity

import (
	"fmt"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// CartLine is one (product, quantity) pairing within a cart. Prices are
// snapshotted when the line is created and never re-read from the catalog, so
// a cart keeps displaying the price the customer accepted.
type CartLine struct {
	ProductID         string          `json:"product_id"`
	Title             string          `json:"title"`
	ImageURL          string          `json:"image_url"`
	Quantity          int             `json:"quantity"`
	UnitPriceSnapshot decimal.Decimal `json:"unit_price_snapshot"` // Effective (discounted) price at time of add.
	OriginalUnitPrice decimal.Decimal `json:"original_unit_price"` // Pre-discount price, for discount display.
}

// LineTotal returns UnitPriceSnapshot × Quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.UnitPriceSnapshot.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the authoritative, ordered list of items one owner intends to buy.
// Invariants: at most one line per product id, and every line has quantity at
// least 1; a line driven to zero is removed, never retained. All mutating
// methods preserve both.
//
// The in-memory cart is the source of truth during a session; persistence is
// a best-effort mirror written after each mutation.
type Cart struct {
	OwnerKey  string     `json:"owner_key"` // Guest key or authenticated user id.
	Lines     []CartLine `json:"lines"`     // Insertion order is display order.
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the given owner.
func NewCart(ownerKey string) *Cart {
	return &Cart{OwnerKey: ownerKey}
}

// FindLine returns the index of the line for productID, or -1.
func (c *Cart) FindLine(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}

	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity returns the summed quantity across all lines, the number
// shown on the cart badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Lines {
		total += c.Lines[i].Quantity
	}

	return total
}

// AddLine adds quantity units of the product. If a line for the product
// already exists its quantity is increased; otherwise a new line is appended
// with the product's current effective price snapshotted. The stock gate
// applies to the combined quantity, so repeated adds cannot overshoot.
func (c *Cart) AddLine(product *Product, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity.WithDetails(
			fmt.Sprintf("product %s: requested quantity %d", product.ID, quantity))
	}

	idx := c.FindLine(product.ID)
	combined := quantity
	if idx >= 0 {
		combined += c.Lines[idx].Quantity
	}
	if !product.HasStock(combined) {
		return outOfStock(product, combined)
	}

	if idx >= 0 {
		c.Lines[idx].Quantity = combined
	} else {
		c.Lines = append(c.Lines, CartLine{
			ProductID:         product.ID,
			Title:             product.Title,
			ImageURL:          product.ImageURL,
			Quantity:          quantity,
			UnitPriceSnapshot: product.DiscountedUnitPrice(),
			OriginalUnitPrice: product.UnitPrice,
		})
	}
	c.UpdatedAt = time.Now()

	return nil
}

// RemoveLine removes the line for productID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveLine(productID string) {
	idx := c.FindLine(productID)
	if idx < 0 {
		return
	}

	c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	c.UpdatedAt = time.Now()
}

// SetLineQuantity replaces (not adds to) the quantity of an existing line.
// Callers handle quantity < 1 as removal before reaching here.
func (c *Cart) SetLineQuantity(product *Product, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity.WithDetails(
			fmt.Sprintf("product %s: requested quantity %d", product.ID, quantity))
	}

	idx := c.FindLine(product.ID)
	if idx < 0 {
		return domainerrors.ErrCartLineNotFound.WithDetails("product " + product.ID)
	}
	if !product.HasStock(quantity) {
		return outOfStock(product, quantity)
	}

	c.Lines[idx].Quantity = quantity
	c.UpdatedAt = time.Now()

	return nil
}

// Merge folds another cart into this one: quantities are summed for lines
// present in both carts (this cart's price snapshots win, being the older
// ones), and lines unique to the other cart are appended in their order.
func (c *Cart) Merge(other *Cart) {
	if other == nil || other.IsEmpty() {
		return
	}

	for i := range other.Lines {
		line := other.Lines[i]
		if idx := c.FindLine(line.ProductID); idx >= 0 {
			c.Lines[idx].Quantity += line.Quantity
		} else {
			c.Lines = append(c.Lines, line)
		}
	}
	c.UpdatedAt = time.Now()
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// Totals computes the derived monetary summary of the current line list.
// It is pure: calling it repeatedly without mutation yields identical results.
func (c *Cart) Totals(rules pricing.Rules) pricing.Totals {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for i := range c.Lines {
		line := &c.Lines[i]
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.UnitPriceSnapshot.Mul(qty))
		discount = discount.Add(line.OriginalUnitPrice.Sub(line.UnitPriceSnapshot).Mul(qty))
	}

	charge := rules.DeliveryChargeFor(subtotal)

	return pricing.Totals{
		Subtotal:       subtotal,
		DiscountTotal:  discount,
		DeliveryCharge: charge,
		Total:          subtotal.Add(charge),
	}
}

func outOfStock(product *Product, requested int) error {
	available := 0
	if product.Stock != nil {
		available = *product.Stock
	}

	return domainerrors.ErrOutOfStock.WithDetails(
		fmt.Sprintf("product %s: requested %d, available %d", product.ID, requested, available))
}
