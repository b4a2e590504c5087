package impl

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	pageLimit   int
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Config      *config.Config
}

// NewCatalogService creates the catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	limit := 20
	if params.Config.Catalog != nil && params.Config.Catalog.PageLimit > 0 {
		limit = params.Config.Catalog.PageLimit
	}

	return &catalogService{
		catalogRepo: params.CatalogRepo,
		pageLimit:   limit,
	}
}

// GetProduct resolves a product id to its current record.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("product " + id)
		}

		return nil, domainerrors.NewPersistenceError(err, "catalog.get")
	}

	return product, nil
}

// ListProducts returns a filtered, paginated product listing.
func (s *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	limit := input.Limit
	if limit <= 0 || limit > s.pageLimit {
		limit = s.pageLimit
	}

	products, nextCursor, err := s.catalogRepo.List(ctx, repository.CatalogQuery{
		Category:        input.Category,
		Search:          input.Search,
		IncludeInactive: input.IncludeInactive,
		Cursor:          input.Cursor,
		Limit:           limit,
	})
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "catalog.list")
	}

	return &usecase.ProductPage{
		Products:   products,
		NextCursor: nextCursor,
	}, nil
}

// CreateProduct adds a new catalog record on behalf of an administrator.
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "catalog.create")
	}

	return product, nil
}

// UpdateProduct replaces an existing catalog record.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, input *usecase.SaveProductInput) (*entity.Product, error) {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("product " + id)
		}

		return nil, domainerrors.NewPersistenceError(err, "catalog.update")
	}

	return product, nil
}

// DeleteProduct removes a catalog record.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WithDetails("product " + id)
		}

		return domainerrors.NewPersistenceError(err, "catalog.delete")
	}

	return nil
}

func productFromInput(input *usecase.SaveProductInput) (*entity.Product, error) {
	unitPrice, err := decimal.NewFromString(input.UnitPrice)
	if err != nil {
		return nil, domainerrors.ErrInvalidProduct.WithDetails("unit_price must be a decimal string")
	}

	status := entity.ProductStatus(input.Status)
	if input.Status == "" {
		status = entity.ProductStatusActive
	}

	return &entity.Product{
		ID:              input.ID,
		Title:           input.Title,
		UnitPrice:       unitPrice,
		DiscountPercent: input.DiscountPercent,
		Stock:           input.Stock,
		ImageURL:        input.ImageURL,
		Category:        input.Category,
		Description:     input.Description,
		Rating:          input.Rating,
		Status:          status,
	}, nil
}
