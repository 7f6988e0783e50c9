package repository

import (
	"context"
	"strings"

	"pc-builder/internal/model"
)

// ProductFilter narrows a catalog listing. All criteria are conjunctive.
// Nil price bounds are unbounded on that side.
type ProductFilter struct {
	Category model.Category
	Brands   []string
	Sockets  []string
	MinPrice *int
	MaxPrice *int
	Search   string
}

// matches reports whether a product satisfies every supplied criterion.
// Used by the in-memory backend; the postgres backend compiles the same
// semantics to SQL.
func (f ProductFilter) matches(p model.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Sockets) > 0 && (p.Socket == "" || !contains(f.Sockets, p.Socket)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	// List retrieves products matching the filter, in insertion order.
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. A missing product
	// is (nil, nil), not an error.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the products whose ids resolve; unknown ids
	// are silently skipped.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create stores a product under a freshly assigned id and returns
	// the stored record.
	Create(ctx context.Context, product model.Product) (*model.Product, error)
}

// BuildRepository defines the interface for saved build configurations.
type BuildRepository interface {
	// GetByID retrieves a build by its ID. A missing build is
	// (nil, nil), not an error.
	GetByID(ctx context.Context, id string) (*model.Build, error)

	// Create stores a build under a fresh id with the creation
	// timestamp set.
	Create(ctx context.Context, req model.BuildRequest) (*model.Build, error)

	// Update shallow-merges the provided fields over the stored build.
	// CreatedAt and ID are never touched; TotalPrice is never
	// recomputed. A missing build is (nil, nil).
	Update(ctx context.Context, id string, upd model.BuildUpdate) (*model.Build, error)
}
