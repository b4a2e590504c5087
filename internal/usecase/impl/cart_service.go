// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	rules       pricing.Rules
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService creates the Cart Ledger service.
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	rules, err := rulesFromConfig(params.Config)
	if err != nil {
		return nil, err
	}

	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		rules:       rules,
		logger:      params.Logger,
	}, nil
}

func rulesFromConfig(cfg *config.Config) (pricing.Rules, error) {
	if cfg.Pricing == nil {
		return pricing.DefaultRules(), nil
	}

	rules, err := pricing.RulesFromStrings(cfg.Pricing.FreeDeliveryThreshold, cfg.Pricing.DeliveryFee)
	if err != nil {
		return pricing.Rules{}, errors.Wrap(err, "invalid pricing configuration")
	}

	return rules, nil
}

// GetCart loads the owner's cart, returning an empty one when none exists.
func (s *cartService) GetCart(ctx context.Context, ownerKey string) (*usecase.CartView, error) {
	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// AddItem adds quantity units of the product to the owner's cart. The
// mutation is applied to the loaded cart first and then mirrored to the
// store; a failed mirror rejects the operation rather than leaving the UI in
// an indeterminate state.
func (s *cartService) AddItem(ctx context.Context, ownerKey string, input *usecase.AddItemInput) (*usecase.CartView, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.resolveProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, domainerrors.ErrProductInactive.WithDetails("product " + product.ID)
	}

	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	if err := cart.AddLine(product, quantity); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// RemoveItem removes the product's line from the cart. Removing an absent
// line is a no-op, not an error.
func (s *cartService) RemoveItem(ctx context.Context, ownerKey, productID string) (*usecase.CartView, error) {
	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(productID)

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// SetQuantity replaces a line's quantity; below 1 the line is removed.
func (s *cartService) SetQuantity(ctx context.Context, ownerKey, productID string, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return s.RemoveItem(ctx, ownerKey, productID)
	}

	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	if cart.FindLine(productID) < 0 {
		return nil, domainerrors.ErrCartLineNotFound.WithDetails("product " + productID)
	}

	product, err := s.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetLineQuantity(product, quantity); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// Totals computes the monetary summary for the owner's current cart.
func (s *cartService) Totals(ctx context.Context, ownerKey string) (pricing.Totals, error) {
	cart, err := s.loadCart(ctx, ownerKey)
	if err != nil {
		return pricing.Totals{}, err
	}

	return cart.Totals(s.rules), nil
}

// MergeCarts folds the guest cart into the user's cart after login, summing
// quantities for lines present in both. The guest cart is deleted once the
// merged cart is persisted under the user's key.
func (s *cartService) MergeCarts(ctx context.Context, guestKey, userKey string) (*usecase.CartView, error) {
	userCart, err := s.loadCart(ctx, userKey)
	if err != nil {
		return nil, err
	}

	guestCart, err := s.cartRepo.Get(ctx, guestKey)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.NewPersistenceError(err, "cart.get")
		}
		// Nothing to merge.
		return s.view(userCart), nil
	}

	userCart.Merge(guestCart)

	if err := s.persist(ctx, userCart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Delete(ctx, guestKey); err != nil {
		// The merged cart is already durable under the user's key; a stale
		// guest document is harmless, so this is not surfaced to the caller.
		s.logger.Warn("failed to delete guest cart after merge",
			slog.String("guestKey", guestKey),
			slog.Any("error", err),
		)
	}

	return s.view(userCart), nil
}

func (s *cartService) loadCart(ctx context.Context, ownerKey string) (*entity.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewCart(ownerKey), nil
		}

		return nil, domainerrors.NewPersistenceError(err, "cart.get")
	}

	return cart, nil
}

func (s *cartService) resolveProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("product " + productID)
		}

		return nil, domainerrors.NewPersistenceError(err, "catalog.get")
	}

	return product, nil
}

func (s *cartService) persist(ctx context.Context, cart *entity.Cart) error {
	if err := s.cartRepo.Set(ctx, cart); err != nil {
		return domainerrors.NewPersistenceError(err, "cart.set")
	}

	return nil
}

func (s *cartService) view(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Cart:   cart,
		Totals: cart.Totals(s.rules),
	}
}
