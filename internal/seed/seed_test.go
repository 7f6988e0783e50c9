package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader is a Loader test double that records the source it was
// asked for.
type stubLoader struct {
	products []model.Product
	err      error
	source   string
}

func (l *stubLoader) Load(_ context.Context, source string) ([]model.Product, error) {
	l.source = source
	return l.products, l.err
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalogFile(t, `[
			{"name": "Intel Core i5 13600K", "category": "cpu", "brand": "Intel", "price": 6450000, "socket": "lga1700", "wattage": 125},
			{"name": "Corsair RM750e", "category": "psu", "brand": "Corsair", "price": 2690000, "specs": {"wattage": 750}}
		]`)

		products, err := loader.Load(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Intel Core i5 13600K", products[0].Name)
		assert.Equal(t, model.CategoryCPU, products[0].Category)
		assert.True(t, products[0].InStock, "in_stock should default to true")
		assert.Equal(t, 750, products[1].PSUCapacity())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeCatalogFile(t, `{"not": "an array"`)

		_, err := loader.Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("invalid entry rejected", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"name": "Mystery Part", "category": "flux-capacitor", "price": 100}]`)

		_, err := loader.Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry 0")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"name": "Free Money", "category": "cpu", "price": -1}]`)

		_, err := loader.Load(context.Background(), path)
		assert.Error(t, err)
	})
}

func TestFallbackLoader_Load(t *testing.T) {
	t.Run("uses S3 result when available", func(t *testing.T) {
		s3 := &stubLoader{products: []model.Product{{Name: "from s3"}}}
		file := &stubLoader{products: []model.Product{{Name: "from file"}}}
		loader := NewFallbackLoader(s3, file, "catalogs/", zerolog.Nop())

		products, err := loader.Load(context.Background(), "catalog.json")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "from s3", products[0].Name)
		assert.Equal(t, "catalogs/catalog.json", s3.source, "S3 key should carry the prefix")
		assert.Empty(t, file.source, "file loader should not be consulted")
	})

	t.Run("falls back to file on S3 error", func(t *testing.T) {
		s3 := &stubLoader{err: errors.New("access denied")}
		file := &stubLoader{products: []model.Product{{Name: "from file"}}}
		loader := NewFallbackLoader(s3, file, "catalogs/", zerolog.Nop())

		products, err := loader.Load(context.Background(), "catalog.json")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "from file", products[0].Name)
		assert.Equal(t, "catalog.json", file.source, "local source should not carry the S3 prefix")
	})

	t.Run("skips S3 when not configured", func(t *testing.T) {
		file := &stubLoader{products: []model.Product{{Name: "from file"}}}
		loader := NewFallbackLoader(nil, file, "catalogs/", zerolog.Nop())

		products, err := loader.Load(context.Background(), "catalog.json")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "from file", products[0].Name)
	})
}

func TestApply(t *testing.T) {
	repo := repository.NewMemoryProductRepository(zerolog.Nop())

	err := Apply(context.Background(), repo, DefaultCatalog(), zerolog.Nop())
	require.NoError(t, err)

	products, err := repo.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, len(DefaultCatalog()))

	for _, p := range products {
		assert.NotEmpty(t, p.ID, "store should assign an id to %s", p.Name)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.NotEmpty(t, catalog)

	for _, p := range catalog {
		assert.NoError(t, p.Validate(), "catalog entry %q should validate", p.Name)
	}
}
