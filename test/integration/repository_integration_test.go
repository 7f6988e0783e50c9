package integration

import (
	"context"
	"testing"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewPostgresProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("List returns seeded products in insertion order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.List(ctx, repository.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 5)
		assert.Equal(t, "Intel Core i7 14700K", products[0].Name)
		assert.Equal(t, "NVIDIA GeForce RTX 4070", products[4].Name)
	})

	t.Run("List with filters", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		cpus, err := repo.List(ctx, repository.ProductFilter{Category: model.CategoryCPU})
		require.NoError(t, err)
		assert.Len(t, cpus, 2)

		amd, err := repo.List(ctx, repository.ProductFilter{Brands: []string{"AMD"}})
		require.NoError(t, err)
		require.Len(t, amd, 1)
		assert.Equal(t, "AMD Ryzen 7 7700X", amd[0].Name)

		// Socket filter must skip products without a socket
		am5, err := repo.List(ctx, repository.ProductFilter{Sockets: []string{"am5"}})
		require.NoError(t, err)
		assert.Len(t, am5, 2)

		minPrice, maxPrice := 2000000, 7000000
		ranged, err := repo.List(ctx, repository.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
		require.NoError(t, err)
		assert.Len(t, ranged, 2)

		found, err := repo.List(ctx, repository.ProductFilter{Search: "ryzen"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "AMD Ryzen 7 7700X", found[0].Name)
	})

	t.Run("GetByID round-trips specs", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		stored := SeedCatalog(t, testDB.Pool)

		psu := stored["Corsair RM750e"]
		product, err := repo.GetByID(ctx, psu.ID)
		require.NoError(t, err)
		require.NotNil(t, product)

		specs, ok := product.Specs.(*model.PSUSpecs)
		require.True(t, ok, "PSU specs should decode to their typed shape")
		assert.Equal(t, 750, specs.Wattage)
		assert.Equal(t, 750, product.PSUCapacity())
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		product, err := repo.GetByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetByIDs skips unknown ids", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		stored := SeedCatalog(t, testDB.Pool)

		cpu := stored["AMD Ryzen 7 7700X"]
		products, err := repo.GetByIDs(ctx, []string{cpu.ID, "does-not-exist"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, cpu.ID, products[0].ID)
	})
}

func TestPostgresBuildRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewPostgresBuildRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, model.BuildRequest{
			Name:       "Gaming rig",
			Components: map[model.Category]string{model.CategoryCPU: "P001", model.CategoryPSU: "P004"},
			TotalPrice: 11180000,
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		fetched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, created.Name, fetched.Name)
		assert.Equal(t, created.Components, fetched.Components)
		assert.Equal(t, created.TotalPrice, fetched.TotalPrice)
	})

	t.Run("Update shallow-merges fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, model.BuildRequest{
			Name:       "Workstation",
			Components: map[model.Category]string{model.CategoryCPU: "P002"},
			TotalPrice: 7890000,
		})
		require.NoError(t, err)

		name := "Workstation v2"
		updated, err := repo.Update(ctx, created.ID, model.BuildUpdate{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, created.Components, updated.Components)
		assert.Equal(t, created.TotalPrice, updated.TotalPrice)
		assert.Equal(t, created.CreatedAt.UTC(), updated.CreatedAt.UTC())
	})

	t.Run("Update returns nil for unknown id", func(t *testing.T) {
		name := "nope"
		updated, err := repo.Update(ctx, "does-not-exist", model.BuildUpdate{Name: &name})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
