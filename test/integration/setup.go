// Package integration contains tests that exercise the service against
// a real PostgreSQL instance and over HTTP.
package integration

import (
	"context"
	"testing"
	"time"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCatalog inserts a small test catalog and returns the stored
// products keyed by name.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) map[string]model.Product {
	t.Helper()

	ctx := context.Background()
	repo := repository.NewPostgresProductRepository(pool, zerolog.Nop())

	seed := []model.Product{
		{
			Name:     "Intel Core i7 14700K",
			Category: model.CategoryCPU,
			Brand:    "Intel",
			Price:    8490000,
			Specs:    &model.CPUSpecs{Cores: "20", Threads: "28", TDP: "125W"},
			Socket:   "lga1700",
			Wattage:  125,
			InStock:  true,
		},
		{
			Name:     "AMD Ryzen 7 7700X",
			Category: model.CategoryCPU,
			Brand:    "AMD",
			Price:    7890000,
			Specs:    &model.CPUSpecs{Cores: "8", Threads: "16", TDP: "105W"},
			Socket:   "am5",
			Wattage:  105,
			InStock:  true,
		},
		{
			Name:     "MSI MAG B650 TOMAHAWK WiFi",
			Category: model.CategoryMainboard,
			Brand:    "MSI",
			Price:    6800000,
			Specs:    &model.MainboardSpecs{Chipset: "B650", MemoryType: "DDR5"},
			Socket:   "am5",
			Wattage:  45,
			InStock:  true,
		},
		{
			Name:     "Corsair RM750e",
			Category: model.CategoryPSU,
			Brand:    "Corsair",
			Price:    2690000,
			Specs:    &model.PSUSpecs{Wattage: 750, Efficiency: "80+ Gold"},
			InStock:  true,
		},
		{
			Name:     "NVIDIA GeForce RTX 4070",
			Category: model.CategoryVGA,
			Brand:    "NVIDIA",
			Price:    15900000,
			Specs:    &model.VGASpecs{Memory: "12GB GDDR6X"},
			Wattage:  200,
			InStock:  true,
		},
	}

	stored := make(map[string]model.Product, len(seed))
	for _, p := range seed {
		created, err := repo.Create(ctx, p)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
		stored[created.Name] = *created
	}
	return stored
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"builds", "products"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
