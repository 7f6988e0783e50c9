package service

import (
	"context"
	"fmt"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves products matching the filter, in catalog order.
func (s *catalogService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		s.logger.Warn().Str("category", string(filter.Category)).Msg("unknown category filter")
		return nil, model.NewDomainError(model.ErrCodeInvalidCategory,
			fmt.Sprintf("unknown category %q", filter.Category))
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", string(filter.Category)).
		Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Categories returns the component categories in build order.
func (s *catalogService) Categories(_ context.Context) []model.Category {
	return model.Categories
}
