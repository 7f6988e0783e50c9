// Package seed loads the startup product catalog from a local file or
// S3 and applies it to a product repository.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
)

// Loader defines the interface for reading a product catalog file.
type Loader interface {
	// Load reads a catalog file (a JSON array of products) and returns
	// the decoded products.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// parseProducts decodes a JSON array of products and validates each
// entry.
func parseProducts(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d invalid: %w", i, err)
		}
	}
	return products, nil
}

// Apply inserts every product into the repository. Ids from the seed
// file are discarded; the store assigns fresh ones.
func Apply(ctx context.Context, repo repository.ProductRepository, products []model.Product, logger zerolog.Logger) error {
	for _, p := range products {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	logger.Info().Int("count", len(products)).Msg("product catalog seeded")
	return nil
}
