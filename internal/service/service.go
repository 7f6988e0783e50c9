// Package service contains the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"
)

// CatalogService defines operations for browsing the product catalog.
type CatalogService interface {
	// List retrieves products matching the filter, in catalog order.
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Categories returns the component categories in build order.
	Categories(ctx context.Context) []model.Category
}

// BuildService defines operations for saved build configurations.
type BuildService interface {
	// Create persists a new build configuration.
	Create(ctx context.Context, req model.BuildRequest) (*model.Build, error)

	// GetByID retrieves a build by its ID.
	GetByID(ctx context.Context, id string) (*model.Build, error)

	// Update applies a partial update to an existing build.
	Update(ctx context.Context, id string, upd model.BuildUpdate) (*model.Build, error)
}

// OrderService defines operations for submitting builds as remote
// store orders.
type OrderService interface {
	// CreateOrder resolves the selected components and submits them as
	// a WooCommerce order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// Status reports which adapter credentials are configured.
	Status(ctx context.Context) model.WooCommerceStatus
}
