package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	catalogRepo   repository.CatalogRepository
	idGenerator   service.OrderIDGenerator
	publisher     service.EventPublisher
	rules         pricing.Rules
	idMaxAttempts int
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	CatalogRepo repository.CatalogRepository
	IDGenerator service.OrderIDGenerator
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates the Order Compiler service.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	rules, err := rulesFromConfig(params.Config)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if params.Config.Order != nil && params.Config.Order.IDMaxAttempts > 0 {
		attempts = params.Config.Order.IDMaxAttempts
	}

	return &orderService{
		cartRepo:      params.CartRepo,
		orderRepo:     params.OrderRepo,
		catalogRepo:   params.CatalogRepo,
		idGenerator:   params.IDGenerator,
		publisher:     params.Publisher,
		rules:         rules,
		idMaxAttempts: attempts,
		logger:        params.Logger,
	}, nil
}

// SubmitOrder freezes the owner's cart into an immutable order.
//
// Ordering matters here: nothing touches the cart until the order record is
// durably written, so any failure up to that point loses no cart contents.
// Everything after the write (cart clear, stock decrement, event publish) is
// reported but never rolls the order back; the customer has already seen a
// success state.
func (s *orderService) SubmitOrder(ctx context.Context, ownerKey string, input *usecase.SubmitOrderInput) (*usecase.SubmitOrderOutput, error) {
	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	shipping := &entity.ShippingInfo{
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
	}

	orderID, err := s.idGenerator.NewOrderID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order id")
	}

	order, err := entity.CompileOrder(orderID, cart, shipping, s.rules, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.createWithRetry(ctx, order); err != nil {
		return nil, err
	}

	output := &usecase.SubmitOrderOutput{Order: order}

	// The order is durable from here on.
	cart.Clear()
	if err := s.cartRepo.Set(ctx, cart); err != nil {
		s.logger.Error("cart not cleared after order creation",
			slog.String("orderID", order.OrderID),
			slog.String("ownerKey", ownerKey),
			slog.Any("error", err),
		)
		output.Warnings = append(output.Warnings,
			"cart could not be cleared; it may still show the ordered items")
	}

	s.decrementStock(ctx, order, output)
	s.publishEvent(ctx, order, constants.EventOrderCreated)

	return output, nil
}

// createWithRetry persists the order, regenerating the id on a collision.
func (s *orderService) createWithRetry(ctx context.Context, order *entity.Order) error {
	for attempt := 0; ; attempt++ {
		err := s.orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}

		if errors.Is(err, repository.ErrOrderAlreadyExists) {
			if attempt+1 >= s.idMaxAttempts {
				return domainerrors.ErrOrderAlreadyExists.WithDetails("order " + order.OrderID)
			}

			orderID, genErr := s.idGenerator.NewOrderID()
			if genErr != nil {
				return errors.Wrap(genErr, "failed to regenerate order id")
			}
			s.logger.Warn("order id collision, retrying",
				slog.String("collidedID", order.OrderID),
				slog.String("newID", orderID),
			)
			order.OrderID = orderID

			continue
		}

		return domainerrors.NewPersistenceError(err, "order.create")
	}
}

// decrementStock applies the atomic per-product stock adjustments for a
// committed order. Conflicts and failures are recorded on the output; stock
// correction is an administrative follow-up, not a rollback.
func (s *orderService) decrementStock(ctx context.Context, order *entity.Order, output *usecase.SubmitOrderOutput) {
	for i := range order.Items {
		item := &order.Items[i]
		err := s.catalogRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}

		if errors.Is(err, repository.ErrStockConflict) {
			s.logger.Warn("stock conflict during order fulfilment",
				slog.String("orderID", order.OrderID),
				slog.String("productID", item.ProductID),
				slog.Int("quantity", item.Quantity),
			)
			output.StockConflicts = append(output.StockConflicts, item.ProductID)
			output.Warnings = append(output.Warnings,
				fmt.Sprintf("stock for product %s was exhausted before it could be reserved", item.ProductID))

			continue
		}

		s.logger.Error("stock decrement failed",
			slog.String("orderID", order.OrderID),
			slog.String("productID", item.ProductID),
			slog.Any("error", err),
		)
		output.Warnings = append(output.Warnings,
			fmt.Sprintf("stock for product %s could not be adjusted", item.ProductID))
	}
}

func (s *orderService) publishEvent(ctx context.Context, order *entity.Order, eventType string) {
	event := &service.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.OrderID,
		OwnerID:    order.OwnerID,
		Total:      order.Total.String(),
		Status:     string(order.Status),
		OccurredAt: time.Now(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("orderID", order.OrderID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

// GetOrder retrieves one order. When ownerID is non-empty the order must
// belong to that owner; absent orders and foreign orders are indistinguishable
// to the caller.
func (s *orderService) GetOrder(ctx context.Context, ownerID, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails("order " + orderID)
		}

		return nil, domainerrors.NewPersistenceError(err, "order.get")
	}

	if ownerID != "" && order.OwnerID != ownerID {
		return nil, domainerrors.ErrOrderNotFound.WithDetails("order " + orderID)
	}

	return order, nil
}

// ListOrders retrieves the owner's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, ownerID string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "order.list")
	}

	return orders, nil
}

// ListAllOrders retrieves every order for the admin panel.
func (s *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "order.list")
	}

	return orders, nil
}

// UpdateOrderStatus sets an order's status. Any known status may be set at
// any time; the store keeps the source's permissive transition model.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	status, err := entity.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, err
	}

	order, err := s.GetOrder(ctx, "", orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails("order " + orderID)
		}

		return nil, domainerrors.NewPersistenceError(err, "order.updateStatus")
	}

	order.Status = status
	s.publishEvent(ctx, order, constants.EventOrderStatusChanged)

	return order, nil
}

func (s *orderService) loadCart(ctx context.Context, ownerKey string) (*entity.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// No cart was ever persisted for this owner, so there is
			// nothing to order.
			return nil, domainerrors.ErrEmptyCart.WithDetails("owner " + ownerKey)
		}

		return nil, domainerrors.NewPersistenceError(err, "cart.get")
	}

	return cart, nil
}
