package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (repo *orderRepository) orders() *firestore.CollectionRef {
	return repo.client.Collection(model.OrderModel{}.CollectionName())
}

// Create persists a new order record. Firestore's create precondition makes
// the order id claim atomic, which is what the id-collision retry relies on.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := model.FromOrderDomain(order)

	if _, err := repo.orders().Doc(order.OrderID).Create(ctx, orderM); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrOrderAlreadyExists
		}

		return errors.Wrap(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves a single order by its id.
func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	snap, err := repo.orders().Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return orderFromSnapshot(snap)
}

// ListByOwner retrieves the owner's orders, newest first.
func (repo *orderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Order, error) {
	q := repo.orders().Query.
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)

	return repo.collect(ctx, q)
}

// ListAll retrieves every order, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	q := repo.orders().Query.OrderBy("createdAt", firestore.Desc)

	return repo.collect(ctx, q)
}

// UpdateStatus sets the order's status field.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID string, orderStatus entity.OrderStatus) error {
	updates := []firestore.Update{{Path: "status", Value: string(orderStatus)}}

	if _, err := repo.orders().Doc(orderID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

func (repo *orderRepository) collect(ctx context.Context, q firestore.Query) ([]*entity.Order, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		order, err := orderFromSnapshot(snap)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func orderFromSnapshot(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := snap.DataTo(&orderM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order %s", snap.Ref.ID)
	}
	orderM.OrderID = snap.Ref.ID

	return orderM.ToOrderDomain()
}
