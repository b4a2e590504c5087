package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CartLineModel is one embedded line inside a cart document.
type CartLineModel struct {
	ProductID         string `firestore:"productId"`
	Title             string `firestore:"title"`
	ImageURL          string `firestore:"imageUrl"`
	Quantity          int    `firestore:"quantity"`
	UnitPriceSnapshot string `firestore:"unitPriceSnapshot"`
	OriginalUnitPrice string `firestore:"originalUnitPrice"`
}

// CartModel is the document shape for the 'carts' collection. The document id
// is the owner key, so each owner has at most one cart document.
type CartModel struct {
	OwnerKey  string          `firestore:"-"`
	Lines     []CartLineModel `firestore:"lines"`
	UpdatedAt time.Time       `firestore:"updatedAt"`
}

// CollectionName returns the Firestore collection for carts.
func (CartModel) CollectionName() string {
	return "carts"
}

// FromCartDomain converts a domain cart into its document shape.
func FromCartDomain(cart *entity.Cart) *CartModel {
	lines := make([]CartLineModel, 0, len(cart.Lines))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		lines = append(lines, CartLineModel{
			ProductID:         line.ProductID,
			Title:             line.Title,
			ImageURL:          line.ImageURL,
			Quantity:          line.Quantity,
			UnitPriceSnapshot: line.UnitPriceSnapshot.String(),
			OriginalUnitPrice: line.OriginalUnitPrice.String(),
		})
	}

	return &CartModel{
		OwnerKey:  cart.OwnerKey,
		Lines:     lines,
		UpdatedAt: cart.UpdatedAt,
	}
}

// ToCartDomain converts a document back into the domain entity.
func (m *CartModel) ToCartDomain() (*entity.Cart, error) {
	lines := make([]entity.CartLine, 0, len(m.Lines))
	for i := range m.Lines {
		lineM := &m.Lines[i]

		snapshot, err := decimal.NewFromString(lineM.UnitPriceSnapshot)
		if err != nil {
			return nil, errors.Wrapf(err, "cart %s line %s has malformed price snapshot", m.OwnerKey, lineM.ProductID)
		}

		original, err := decimal.NewFromString(lineM.OriginalUnitPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "cart %s line %s has malformed original price", m.OwnerKey, lineM.ProductID)
		}

		lines = append(lines, entity.CartLine{
			ProductID:         lineM.ProductID,
			Title:             lineM.Title,
			ImageURL:          lineM.ImageURL,
			Quantity:          lineM.Quantity,
			UnitPriceSnapshot: snapshot,
			OriginalUnitPrice: original,
		})
	}

	return &entity.Cart{
		OwnerKey:  m.OwnerKey,
		Lines:     lines,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
