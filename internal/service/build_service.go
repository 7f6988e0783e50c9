package service

import (
	"context"
	"fmt"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
)

// buildService implements BuildService.
type buildService struct {
	buildRepo repository.BuildRepository
	logger    zerolog.Logger
}

// NewBuildService creates a new build service.
func NewBuildService(buildRepo repository.BuildRepository, logger zerolog.Logger) BuildService {
	return &buildService{
		buildRepo: buildRepo,
		logger:    logger.With().Str("service", "build").Logger(),
	}
}

// Create persists a new build configuration.
func (s *buildService) Create(ctx context.Context, req model.BuildRequest) (*model.Build, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid build request")
		return nil, err
	}

	build, err := s.buildRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create build")
		return nil, fmt.Errorf("failed to create build: %w", err)
	}

	s.logger.Info().
		Str("build_id", build.ID).
		Str("name", build.Name).
		Int("components", len(build.Components)).
		Msg("build created")

	return build, nil
}

// GetByID retrieves a build by its ID.
func (s *buildService) GetByID(ctx context.Context, id string) (*model.Build, error) {
	if id == "" {
		s.logger.Warn().Msg("build ID is empty")
		return nil, model.ErrBuildNotFound
	}

	build, err := s.buildRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("build_id", id).Msg("failed to get build by ID")
		return nil, fmt.Errorf("failed to get build: %w", err)
	}

	if build == nil {
		s.logger.Debug().Str("build_id", id).Msg("build not found")
		return nil, model.ErrBuildNotFound
	}

	return build, nil
}

// Update applies a partial update to an existing build.
func (s *buildService) Update(ctx context.Context, id string, upd model.BuildUpdate) (*model.Build, error) {
	if id == "" {
		return nil, model.ErrBuildNotFound
	}
	if err := upd.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("build_id", id).Msg("invalid build update")
		return nil, err
	}

	build, err := s.buildRepo.Update(ctx, id, upd)
	if err != nil {
		s.logger.Error().Err(err).Str("build_id", id).Msg("failed to update build")
		return nil, fmt.Errorf("failed to update build: %w", err)
	}

	if build == nil {
		s.logger.Debug().Str("build_id", id).Msg("build not found for update")
		return nil, model.ErrBuildNotFound
	}

	s.logger.Info().Str("build_id", id).Msg("build updated")

	return build, nil
}
