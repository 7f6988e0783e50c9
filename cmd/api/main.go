package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pc-builder/internal/compat"
	"pc-builder/internal/config"
	"pc-builder/internal/database"
	"pc-builder/internal/handler"
	"pc-builder/internal/repository"
	"pc-builder/internal/router"
	"pc-builder/internal/seed"
	"pc-builder/internal/service"
	"pc-builder/pkg/woocommerce"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting pc-builder API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories for the configured backend
	var productRepo repository.ProductRepository
	var buildRepo repository.BuildRepository

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := repository.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}

		productRepo = repository.NewPostgresProductRepository(pool, logger)
		buildRepo = repository.NewPostgresBuildRepository(pool, logger)

		// Seed only when the catalog is empty so restarts don't duplicate it
		existing, err := productRepo.List(ctx, repository.ProductFilter{})
		if err != nil {
			return fmt.Errorf("failed to inspect catalog: %w", err)
		}
		if len(existing) == 0 {
			if err := seedCatalog(ctx, cfg, productRepo, logger); err != nil {
				return err
			}
		}

	default:
		productRepo = repository.NewMemoryProductRepository(logger)
		buildRepo = repository.NewMemoryBuildRepository(logger)

		if err := seedCatalog(ctx, cfg, productRepo, logger); err != nil {
			return err
		}
	}

	// Initialize the WooCommerce order adapter when credentials are present
	var submitter service.OrderSubmitter
	if cfg.WooCommerce.Configured() {
		submitter = woocommerce.NewClient(woocommerce.Config{
			BaseURL:        cfg.WooCommerce.URL,
			ConsumerKey:    cfg.WooCommerce.ConsumerKey,
			ConsumerSecret: cfg.WooCommerce.ConsumerSecret,
		}, logger)
		logger.Info().Str("url", cfg.WooCommerce.URL).Msg("WooCommerce adapter configured")
	} else {
		logger.Info().Msg("WooCommerce adapter not configured, order submission disabled")
	}

	// Initialize services
	evaluator := compat.NewEvaluator(productRepo, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	buildService := service.NewBuildService(buildRepo, logger)
	orderService := service.NewOrderService(productRepo, submitter, cfg.WooCommerce, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogService, logger)
	buildHandler := handler.NewBuildHandler(buildService, logger)
	compatibilityHandler := handler.NewCompatibilityHandler(evaluator, logger)
	wooHandler := handler.NewWooCommerceHandler(orderService, logger)

	// Initialize router
	mux := router.New(productHandler, buildHandler, compatibilityHandler, wooHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog fills the product repository from the configured seed
// source, falling back to the embedded default catalog when no source
// is configured or loading fails.
func seedCatalog(ctx context.Context, cfg *config.Config, repo repository.ProductRepository, logger zerolog.Logger) error {
	products := seed.DefaultCatalog()

	if cfg.Seed.Source != "" {
		fileLoader := seed.NewFileLoader(logger)
		var loader seed.Loader = fileLoader

		if cfg.Seed.S3Enabled {
			s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				loader = seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3Prefix, logger)
			}
		}

		loaded, err := loader.Load(ctx, cfg.Seed.Source)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("source", cfg.Seed.Source).
				Msg("failed to load seed catalog, using embedded default catalog")
		} else {
			products = loaded
		}
	}

	if err := seed.Apply(ctx, repo, products, logger); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
