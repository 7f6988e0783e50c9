package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pc-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresBuildRepository implements BuildRepository using PostgreSQL.
type postgresBuildRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresBuildRepository creates a PostgreSQL-backed build repository.
func NewPostgresBuildRepository(pool *pgxpool.Pool, logger zerolog.Logger) BuildRepository {
	return &postgresBuildRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "build-postgres").Logger(),
	}
}

// GetByID retrieves a build by its ID.
func (r *postgresBuildRepository) GetByID(ctx context.Context, id string) (*model.Build, error) {
	query := `SELECT id, name, components, total_price, created_at FROM builds WHERE id = $1`

	b, err := r.scanBuild(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("build_id", id).Msg("build not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("build_id", id).Msg("failed to query build")
		return nil, fmt.Errorf("failed to query build: %w", err)
	}
	return b, nil
}

// Create stores a build under a fresh id with CreatedAt set by the insert.
func (r *postgresBuildRepository) Create(ctx context.Context, req model.BuildRequest) (*model.Build, error) {
	components := req.Components
	if components == nil {
		components = map[model.Category]string{}
	}
	componentsJSON, err := json.Marshal(components)
	if err != nil {
		return nil, fmt.Errorf("failed to encode components: %w", err)
	}

	query := `
		INSERT INTO builds (id, name, components, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, components, total_price, created_at
	`

	b, err := r.scanBuild(r.pool.QueryRow(ctx, query,
		uuid.NewString(), req.Name, componentsJSON, req.TotalPrice, time.Now().UTC()))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert build")
		return nil, fmt.Errorf("failed to insert build: %w", err)
	}

	r.logger.Debug().Str("build_id", b.ID).Msg("build created")
	return b, nil
}

// Update shallow-merges the provided fields over the stored build.
// COALESCE keeps the stored value for every field not present in the
// payload; created_at is never written.
func (r *postgresBuildRepository) Update(ctx context.Context, id string, upd model.BuildUpdate) (*model.Build, error) {
	var componentsJSON []byte
	if upd.Components != nil {
		var err error
		componentsJSON, err = json.Marshal(upd.Components)
		if err != nil {
			return nil, fmt.Errorf("failed to encode components: %w", err)
		}
	}

	query := `
		UPDATE builds
		SET name        = COALESCE($2, name),
		    components  = COALESCE($3, components),
		    total_price = COALESCE($4, total_price)
		WHERE id = $1
		RETURNING id, name, components, total_price, created_at
	`

	b, err := r.scanBuild(r.pool.QueryRow(ctx, query, id, upd.Name, componentsJSON, upd.TotalPrice))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("build_id", id).Msg("build not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("build_id", id).Msg("failed to update build")
		return nil, fmt.Errorf("failed to update build: %w", err)
	}

	r.logger.Debug().Str("build_id", id).Msg("build updated")
	return b, nil
}

func (r *postgresBuildRepository) scanBuild(row pgx.Row) (*model.Build, error) {
	var (
		b             model.Build
		componentsRaw []byte
	)
	if err := row.Scan(&b.ID, &b.Name, &componentsRaw, &b.TotalPrice, &b.CreatedAt); err != nil {
		return nil, err
	}

	b.Components = map[model.Category]string{}
	if len(componentsRaw) > 0 {
		if err := json.Unmarshal(componentsRaw, &b.Components); err != nil {
			return nil, fmt.Errorf("failed to decode components: %w", err)
		}
	}
	return &b, nil
}
