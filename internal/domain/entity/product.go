// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// ProductStatus describes whether a product is visible to customers.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// percentBase is the divisor for DiscountPercent.
var percentBase = decimal.NewFromInt(100)

// Product is the catalog-owned read model the cart resolves items against.
// The storefront never mutates it except for the atomic stock decrement at
// checkout, which happens at the catalog store, not here.
type Product struct {
	ID              string          `json:"id"`               // Opaque document identifier, unique within the catalog.
	Title           string          `json:"title"`            // Display name.
	UnitPrice       decimal.Decimal `json:"unit_price"`       // Pre-discount price, in the store's currency unit.
	DiscountPercent int             `json:"discount_percent"` // 0-100; 0 means no discount.
	Stock           *int            `json:"stock,omitempty"`  // Remaining units; nil means stock is not tracked.
	ImageURL        string          `json:"image_url"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Rating          float64         `json:"rating"` // 0-5, display only.
	Status          ProductStatus   `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DiscountedUnitPrice returns the effective unit price after applying the
// product's discount percentage, computed in exact decimal arithmetic.
func (p *Product) DiscountedUnitPrice() decimal.Decimal {
	if p.DiscountPercent <= 0 {
		return p.UnitPrice
	}

	factor := percentBase.Sub(decimal.NewFromInt(int64(p.DiscountPercent))).Div(percentBase)

	return p.UnitPrice.Mul(factor)
}

// IsActive reports whether customers may see and buy the product.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// HasStock reports whether at least want units are available. Untracked
// stock is treated as unlimited.
func (p *Product) HasStock(want int) bool {
	if p.Stock == nil {
		return true
	}

	return *p.Stock >= want
}

// Validate rejects malformed product records at the boundary where backend
// data is ingested, instead of trusting document shape.
func (p *Product) Validate() error {
	var problems []string

	if p.ID == "" {
		problems = append(problems, "id is required")
	}
	if p.Title == "" {
		problems = append(problems, "title is required")
	}
	if p.UnitPrice.IsNegative() {
		problems = append(problems, "unit price must not be negative")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		problems = append(problems, "discount percent must be between 0 and 100")
	}
	if p.Stock != nil && *p.Stock < 0 {
		problems = append(problems, "stock must not be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		problems = append(problems, "rating must be between 0 and 5")
	}
	if p.Status != ProductStatusActive && p.Status != ProductStatusInactive {
		problems = append(problems, fmt.Sprintf("unknown status %q", p.Status))
	}

	if len(problems) > 0 {
		return domainerrors.ErrInvalidProduct.WithDetails(joinProblems(problems))
	}

	return nil
}

func joinProblems(problems []string) string {
	out := problems[0]
	for _, p := range problems[1:] {
		out += "; " + p
	}

	return out
}
