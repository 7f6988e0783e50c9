package repository

import (
	"context"
	"sync"

	"pc-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryProductRepository is a map-backed catalog store. Listing walks
// the catalog in insertion order. Reads and writes are guarded by an
// RWMutex since the HTTP server handles requests concurrently.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
	order    []string
	logger   zerolog.Logger
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository(logger zerolog.Logger) ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]model.Product),
		logger:   logger.With().Str("repository", "product-memory").Logger(),
	}
}

// List retrieves all products matching the filter, in insertion order.
func (r *memoryProductRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Product{}
	for _, id := range r.order {
		p := r.products[id]
		if filter.matches(p) {
			result = append(result, p)
		}
	}

	r.logger.Debug().
		Int("total", len(r.order)).
		Int("matched", len(result)).
		Msg("listed products")

	return result, nil
}

// GetByID retrieves a single product by its ID.
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, nil
	}
	return &p, nil
}

// GetByIDs retrieves the products whose ids resolve.
func (r *memoryProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []model.Product{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// Create stores a product under a freshly assigned id.
func (r *memoryProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)

	r.logger.Debug().
		Str("product_id", product.ID).
		Str("category", product.Category.String()).
		Msg("product created")

	return &product, nil
}
