// Package pricing holds the monetary rules applied to a cart: the flat
// delivery fee and the subtotal threshold above which it is waived.
// All amounts are exact decimals; float arithmetic is never used for money.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Default values, in the store's currency unit. They match the production
// storefront (free delivery strictly above 1000, otherwise a flat 60) and are
// overridable through configuration.
var (
	DefaultFreeDeliveryThreshold = decimal.NewFromInt(1000)
	DefaultDeliveryFee           = decimal.NewFromInt(60)
)

// Rules carries the configurable pricing constants.
type Rules struct {
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	// The comparison is strict: a subtotal exactly at the threshold still
	// pays the fee.
	FreeDeliveryThreshold decimal.Decimal

	// DeliveryFee is the flat charge applied below the threshold.
	DeliveryFee decimal.Decimal
}

// DefaultRules returns the production defaults.
func DefaultRules() Rules {
	return Rules{
		FreeDeliveryThreshold: DefaultFreeDeliveryThreshold,
		DeliveryFee:           DefaultDeliveryFee,
	}
}

// RulesFromStrings builds Rules from the decimal strings carried in
// configuration, falling back to the defaults for empty values.
func RulesFromStrings(threshold, fee string) (Rules, error) {
	rules := DefaultRules()

	if threshold != "" {
		v, err := decimal.NewFromString(threshold)
		if err != nil {
			return Rules{}, err
		}
		rules.FreeDeliveryThreshold = v
	}
	if fee != "" {
		v, err := decimal.NewFromString(fee)
		if err != nil {
			return Rules{}, err
		}
		rules.DeliveryFee = v
	}

	return rules, nil
}

// DeliveryChargeFor returns the delivery charge owed for the given subtotal.
func (r Rules) DeliveryChargeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(r.FreeDeliveryThreshold) {
		return decimal.Zero
	}

	return r.DeliveryFee
}

// Totals is the derived monetary summary of a cart or order. It is a pure
// function of the line list and the rules; computing it has no side effects.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	Total          decimal.Decimal `json:"total"`
}
