package entity

import (
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. The normal flow is
// pending → approved → delivered, but administrators may set any of the
// three values directly; the store deliberately does not guard transitions.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Initial state at creation.
	OrderStatusApproved  OrderStatus = "approved"  // Confirmed by an administrator.
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items.
)

// ParseOrderStatus validates a status string supplied by an administrator.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusApproved, OrderStatusDelivered:
		return OrderStatus(s), nil
	default:
		return "", domainerrors.ErrInvalidOrderStatus.WithDetails("status " + s)
	}
}

// OrderItem is a frozen copy of a cart line at submission time.
type OrderItem struct {
	ProductID         string          `json:"product_id"`
	Title             string          `json:"title"`
	UnitPriceSnapshot decimal.Decimal `json:"unit_price_snapshot"`
	Quantity          int             `json:"quantity"`
}

// Order is the immutable record produced by freezing a cart. Once created,
// only Status may change, and only through an administrative update.
type Order struct {
	OrderID         string          `json:"order_id"`
	OwnerID         string          `json:"owner_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	PaymentMethod   string          `json:"payment_method"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountTotal   decimal.Decimal `json:"discount_total"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"` // Set once at creation.
}

// ShippingInfo is the customer-supplied checkout form.
type ShippingInfo struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// DefaultPaymentMethod is used when the checkout form leaves the field blank.
const DefaultPaymentMethod = "cash"

// Validate checks the required shipping fields, naming every missing one.
func (s *ShippingInfo) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(s.Address) == "" {
		missing = append(missing, "address")
	}

	if len(missing) > 0 {
		return domainerrors.ErrInvalidShippingInfo.WithDetails(
			"missing fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// CompileOrder freezes a non-empty cart and validated shipping info into an
// immutable order with the given id. Totals are computed with the same rules
// the cart itself uses, so the order total always equals what the cart
// displayed immediately before submission.
func CompileOrder(orderID string, cart *Cart, shipping *ShippingInfo, rules pricing.Rules, now time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart.WithDetails("owner " + cart.OwnerKey)
	}
	if err := shipping.Validate(); err != nil {
		return nil, err
	}

	payment := strings.TrimSpace(shipping.PaymentMethod)
	if payment == "" {
		payment = DefaultPaymentMethod
	}

	items := make([]OrderItem, 0, len(cart.Lines))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		items = append(items, OrderItem{
			ProductID:         line.ProductID,
			Title:             line.Title,
			UnitPriceSnapshot: line.UnitPriceSnapshot,
			Quantity:          line.Quantity,
		})
	}

	totals := cart.Totals(rules)

	return &Order{
		OrderID:         orderID,
		OwnerID:         cart.OwnerKey,
		CustomerName:    strings.TrimSpace(shipping.Name),
		CustomerPhone:   strings.TrimSpace(shipping.Phone),
		CustomerAddress: strings.TrimSpace(shipping.Address),
		PaymentMethod:   payment,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountTotal:   totals.DiscountTotal,
		DeliveryCharge:  totals.DeliveryCharge,
		Total:           totals.Total,
		Status:          OrderStatusPending,
		CreatedAt:       now,
	}, nil
}
