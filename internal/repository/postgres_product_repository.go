package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pc-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, category, brand, price, image, description, specs, socket, wattage, in_stock"

// postgresProductRepository implements ProductRepository using PostgreSQL.
type postgresProductRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresProductRepository creates a PostgreSQL-backed product repository.
func NewPostgresProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &postgresProductRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product-postgres").Logger(),
	}
}

// List retrieves products matching the filter in insertion order.
func (r *postgresProductRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := "SELECT " + productColumns + " FROM products"

	var (
		clauses []string
		args    []any
	)
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(filter.Brands) > 0 {
		args = append(args, filter.Brands)
		clauses = append(clauses, fmt.Sprintf("brand = ANY($%d)", len(args)))
	}
	if len(filter.Sockets) > 0 {
		args = append(args, filter.Sockets)
		clauses = append(clauses, fmt.Sprintf("(socket IS NOT NULL AND socket = ANY($%d))", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR brand ILIKE $%d)", len(args), len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY seq"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

// GetByID retrieves a single product by its ID.
func (r *postgresProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	p, err := r.scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return p, nil
}

// GetByIDs retrieves the products whose ids resolve, skipping unknown ids.
func (r *postgresProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := "SELECT " + productColumns + " FROM products WHERE id = ANY($1) ORDER BY seq"

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows)
}

// Create stores a product under a freshly assigned id.
func (r *postgresProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()

	var specsJSON []byte
	if product.Specs != nil {
		var err error
		specsJSON, err = json.Marshal(product.Specs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode specs: %w", err)
		}
	}

	query := `
		INSERT INTO products (id, name, category, brand, price, image, description, specs, socket, wattage, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		string(product.Category),
		product.Brand,
		product.Price,
		product.Image,
		nullableString(product.Description),
		specsJSON,
		nullableString(product.Socket),
		nullableInt(product.Wattage),
		product.InStock,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &product, nil
}

// collectProducts scans every row into a product slice.
func (r *postgresProductRepository) collectProducts(rows pgx.Rows) ([]model.Product, error) {
	products := []model.Product{}
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// scanProduct reads one product row, decoding the specs JSONB into the
// category's typed shape.
func (r *postgresProductRepository) scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p           model.Product
		category    string
		description *string
		specsRaw    []byte
		socket      *string
		wattage     *int
	)

	err := row.Scan(&p.ID, &p.Name, &category, &p.Brand, &p.Price, &p.Image,
		&description, &specsRaw, &socket, &wattage, &p.InStock)
	if err != nil {
		return nil, err
	}

	p.Category = model.Category(category)
	if description != nil {
		p.Description = *description
	}
	if socket != nil {
		p.Socket = *socket
	}
	if wattage != nil {
		p.Wattage = *wattage
	}
	if len(specsRaw) > 0 {
		specs, err := model.DecodeSpecs(p.Category, specsRaw)
		if err != nil {
			return nil, err
		}
		p.Specs = specs
	}

	return &p, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
