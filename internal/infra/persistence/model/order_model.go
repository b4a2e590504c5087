package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// OrderItemModel is one embedded frozen line inside an order document.
type OrderItemModel struct {
	ProductID         string `firestore:"productId"`
	Title             string `firestore:"title"`
	UnitPriceSnapshot string `firestore:"unitPriceSnapshot"`
	Quantity          int    `firestore:"quantity"`
}

// OrderModel is the document shape for the 'orders' collection. The document
// id is the order id.
type OrderModel struct {
	OrderID         string           `firestore:"-"`
	OwnerID         string           `firestore:"ownerId"`
	CustomerName    string           `firestore:"customerName"`
	CustomerPhone   string           `firestore:"customerPhone"`
	CustomerAddress string           `firestore:"customerAddress"`
	PaymentMethod   string           `firestore:"paymentMethod"`
	Items           []OrderItemModel `firestore:"items"`
	Subtotal        string           `firestore:"subtotal"`
	DiscountTotal   string           `firestore:"discountTotal"`
	DeliveryCharge  string           `firestore:"deliveryCharge"`
	Total           string           `firestore:"total"`
	Status          string           `firestore:"status"`
	CreatedAt       time.Time        `firestore:"createdAt"`
}

// CollectionName returns the Firestore collection for orders.
func (OrderModel) CollectionName() string {
	return "orders"
}

// FromOrderDomain converts a domain order into its document shape.
func FromOrderDomain(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemModel{
			ProductID:         item.ProductID,
			Title:             item.Title,
			UnitPriceSnapshot: item.UnitPriceSnapshot.String(),
			Quantity:          item.Quantity,
		})
	}

	return &OrderModel{
		OrderID:         order.OrderID,
		OwnerID:         order.OwnerID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		PaymentMethod:   order.PaymentMethod,
		Items:           items,
		Subtotal:        order.Subtotal.String(),
		DiscountTotal:   order.DiscountTotal.String(),
		DeliveryCharge:  order.DeliveryCharge.String(),
		Total:           order.Total.String(),
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

// ToOrderDomain converts a document back into the domain entity.
func (m *OrderModel) ToOrderDomain() (*entity.Order, error) {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		itemM := &m.Items[i]

		snapshot, err := decimal.NewFromString(itemM.UnitPriceSnapshot)
		if err != nil {
			return nil, errors.Wrapf(err, "order %s item %s has malformed price snapshot", m.OrderID, itemM.ProductID)
		}

		items = append(items, entity.OrderItem{
			ProductID:         itemM.ProductID,
			Title:             itemM.Title,
			UnitPriceSnapshot: snapshot,
			Quantity:          itemM.Quantity,
		})
	}

	subtotal, err := parseMoney(m.OrderID, "subtotal", m.Subtotal)
	if err != nil {
		return nil, err
	}
	discountTotal, err := parseMoney(m.OrderID, "discount total", m.DiscountTotal)
	if err != nil {
		return nil, err
	}
	deliveryCharge, err := parseMoney(m.OrderID, "delivery charge", m.DeliveryCharge)
	if err != nil {
		return nil, err
	}
	total, err := parseMoney(m.OrderID, "total", m.Total)
	if err != nil {
		return nil, err
	}

	return &entity.Order{
		OrderID:         m.OrderID,
		OwnerID:         m.OwnerID,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		CustomerAddress: m.CustomerAddress,
		PaymentMethod:   m.PaymentMethod,
		Items:           items,
		Subtotal:        subtotal,
		DiscountTotal:   discountTotal,
		DeliveryCharge:  deliveryCharge,
		Total:           total,
		Status:          entity.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}, nil
}

func parseMoney(orderID, field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "order %s has malformed %s %q", orderID, field, raw)
	}

	return value, nil
}
