// Package model contains the Firestore-specific document structs for the
// persistence layer. Money fields are stored as decimal strings so document
// round-trips never lose precision.
package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// ProductModel is the document shape for the 'products' collection.
type ProductModel struct {
	ID              string    `firestore:"-"`
	Title           string    `firestore:"title"`
	UnitPrice       string    `firestore:"unitPrice"`
	DiscountPercent int       `firestore:"discountPercent"`
	Stock           *int      `firestore:"stock"`
	ImageURL        string    `firestore:"imageUrl"`
	Category        string    `firestore:"category"`
	Description     string    `firestore:"description"`
	Rating          float64   `firestore:"rating"`
	Status          string    `firestore:"status"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

// CollectionName returns the Firestore collection for products.
func (ProductModel) CollectionName() string {
	return "products"
}

// FromProductDomain converts a domain product into its document shape.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:              product.ID,
		Title:           product.Title,
		UnitPrice:       product.UnitPrice.String(),
		DiscountPercent: product.DiscountPercent,
		Stock:           product.Stock,
		ImageURL:        product.ImageURL,
		Category:        product.Category,
		Description:     product.Description,
		Rating:          product.Rating,
		Status:          string(product.Status),
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// ToProductDomain converts a document back into the domain entity.
func (m *ProductModel) ToProductDomain() (*entity.Product, error) {
	unitPrice, err := decimal.NewFromString(m.UnitPrice)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s has malformed unit price %q", m.ID, m.UnitPrice)
	}

	product := &entity.Product{
		ID:              m.ID,
		Title:           m.Title,
		UnitPrice:       unitPrice,
		DiscountPercent: m.DiscountPercent,
		Stock:           m.Stock,
		ImageURL:        m.ImageURL,
		Category:        m.Category,
		Description:     m.Description,
		Rating:          m.Rating,
		Status:          entity.ProductStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if err := product.Validate(); err != nil {
		return nil, errors.Wrapf(err, "product %s failed validation", m.ID)
	}

	return product, nil
}
