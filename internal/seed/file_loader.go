package seed

import (
	"context"
	"fmt"
	"os"

	"pc-builder/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalog files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a product catalog JSON file from disk.
func (l *fileLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	l.logger.Info().Str("file", source).Msg("loading catalog file")

	file, err := os.Open(source)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", source, err)
	}
	defer file.Close()

	products, err := parseProducts(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to parse catalog file")
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", source, err)
	}

	l.logger.Info().
		Str("file", source).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded successfully")

	return products, nil
}
