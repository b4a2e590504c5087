package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

const defaultListLimit = 20

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	client *firestore.Client
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(client *firestore.Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (repo *catalogRepository) products() *firestore.CollectionRef {
	return repo.client.Collection(model.ProductModel{}.CollectionName())
}

// FindByID retrieves a single product by its document id.
func (repo *catalogRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.products().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return productFromSnapshot(snap)
}

// List retrieves products matching the query in stable id order. Category and
// status are filtered at the store; the free-text search is matched here
// because Firestore has no substring operator.
func (repo *catalogRepository) List(ctx context.Context, query repository.CatalogQuery) ([]*entity.Product, string, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := repo.products().Query.OrderBy(firestore.DocumentID, firestore.Asc)
	if query.Category != "" {
		q = q.Where("category", "==", query.Category)
	}
	if !query.IncludeInactive {
		q = q.Where("status", "==", string(entity.ProductStatusActive))
	}
	if query.Cursor != "" {
		q = q.StartAfter(query.Cursor)
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))

	products := make([]*entity.Product, 0, limit)
	nextCursor := ""

	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to list products")
		}

		product, err := productFromSnapshot(snap)
		if err != nil {
			return nil, "", err
		}
		if !matchesSearch(product, search) {
			continue
		}

		if len(products) == limit {
			// One more match exists beyond this page.
			nextCursor = products[len(products)-1].ID

			break
		}

		products = append(products, product)
	}

	return products, nextCursor, nil
}

// Create persists a new product record.
func (repo *catalogRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := model.FromProductDomain(product)

	if _, err := repo.products().Doc(product.ID).Create(ctx, productM); err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

// Update replaces an existing product record.
func (repo *catalogRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := model.FromProductDomain(product)

	if _, err := repo.products().Doc(product.ID).Set(ctx, productM); err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes a product record.
func (repo *catalogRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.products().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// DecrementStock atomically subtracts quantity from the product's stock
// counter inside a Firestore transaction, so two concurrent checkouts can
// never both take the last units.
func (repo *catalogRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	ref := repo.products().Doc(productID)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to read product in transaction")
		}

		var productM model.ProductModel
		if err := snap.DataTo(&productM); err != nil {
			return errors.Wrap(err, "failed to decode product in transaction")
		}

		// Untracked stock never blocks a sale.
		if productM.Stock == nil {
			return nil
		}
		if *productM.Stock < quantity {
			return repository.ErrStockConflict
		}

		remaining := *productM.Stock - quantity

		return tx.Update(ref, []firestore.Update{{Path: "stock", Value: remaining}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrStockConflict) || errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to decrement stock")
	}

	return nil
}

func productFromSnapshot(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var productM model.ProductModel
	if err := snap.DataTo(&productM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
	}
	productM.ID = snap.Ref.ID

	return productM.ToProductDomain()
}

func matchesSearch(product *entity.Product, search string) bool {
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(product.Title), search) ||
		strings.Contains(strings.ToLower(product.Description), search)
}
