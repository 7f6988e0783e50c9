package repository

import (
	"context"
	"sync"
	"time"

	"pc-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryBuildRepository is a map-backed build store.
type memoryBuildRepository struct {
	mu     sync.RWMutex
	builds map[string]model.Build
	logger zerolog.Logger
	now    func() time.Time
}

// NewMemoryBuildRepository creates an empty in-memory build repository.
func NewMemoryBuildRepository(logger zerolog.Logger) BuildRepository {
	return &memoryBuildRepository{
		builds: make(map[string]model.Build),
		logger: logger.With().Str("repository", "build-memory").Logger(),
		now:    time.Now,
	}
}

// GetByID retrieves a build by its ID.
func (r *memoryBuildRepository) GetByID(ctx context.Context, id string) (*model.Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.builds[id]
	if !ok {
		r.logger.Debug().Str("build_id", id).Msg("build not found")
		return nil, nil
	}
	return &b, nil
}

// Create stores a build under a fresh id with CreatedAt set once.
func (r *memoryBuildRepository) Create(ctx context.Context, req model.BuildRequest) (*model.Build, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	components := req.Components
	if components == nil {
		components = map[model.Category]string{}
	}

	build := model.Build{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Components: components,
		TotalPrice: req.TotalPrice,
		CreatedAt:  r.now().UTC(),
	}
	r.builds[build.ID] = build

	r.logger.Debug().
		Str("build_id", build.ID).
		Int("components", len(build.Components)).
		Msg("build created")

	return &build, nil
}

// Update shallow-merges the provided fields over the stored build.
func (r *memoryBuildRepository) Update(ctx context.Context, id string, upd model.BuildUpdate) (*model.Build, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	build, ok := r.builds[id]
	if !ok {
		r.logger.Debug().Str("build_id", id).Msg("build not found for update")
		return nil, nil
	}

	if upd.Name != nil {
		build.Name = *upd.Name
	}
	if upd.Components != nil {
		build.Components = upd.Components
	}
	if upd.TotalPrice != nil {
		build.TotalPrice = *upd.TotalPrice
	}

	r.builds[id] = build

	r.logger.Debug().Str("build_id", id).Msg("build updated")

	return &build, nil
}
