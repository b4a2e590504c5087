package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// cartRepository implements the repository.CartRepository interface. Each
// owner key maps to exactly one cart document.
type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (repo *cartRepository) carts() *firestore.CollectionRef {
	return repo.client.Collection(model.CartModel{}.CollectionName())
}

// Get retrieves the persisted cart for the owner.
func (repo *cartRepository) Get(ctx context.Context, ownerKey string) (*entity.Cart, error) {
	snap, err := repo.carts().Doc(ownerKey).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to get cart")
	}

	var cartM model.CartModel
	if err := snap.DataTo(&cartM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode cart %s", ownerKey)
	}
	cartM.OwnerKey = snap.Ref.ID

	return cartM.ToCartDomain()
}

// Set replaces the persisted cart for cart.OwnerKey.
func (repo *cartRepository) Set(ctx context.Context, cart *entity.Cart) error {
	cartM := model.FromCartDomain(cart)

	if _, err := repo.carts().Doc(cart.OwnerKey).Set(ctx, cartM); err != nil {
		return errors.Wrap(err, "failed to set cart")
	}

	return nil
}

// Delete removes the persisted cart for the owner. Firestore deletes are
// idempotent, so an absent cart is not an error.
func (repo *cartRepository) Delete(ctx context.Context, ownerKey string) error {
	if _, err := repo.carts().Doc(ownerKey).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}
