package seed

import (
	"context"
	"fmt"

	"pc-builder/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for catalog files stored in AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalog loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 catalog loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads a product catalog JSON object from S3. The source is the
// full S3 key including any prefix.
func (l *s3Loader) Load(ctx context.Context, source string) ([]model.Product, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", source).
		Msg("loading catalog from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(source),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", source).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, source, err)
	}
	defer result.Body.Close()

	products, err := parseProducts(result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", source).
			Msg("failed to parse catalog from S3")
		return nil, fmt.Errorf("failed to parse catalog from S3 %s: %w", source, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", source).
		Int("products_loaded", len(products)).
		Msg("catalog loaded successfully from S3")

	return products, nil
}

// fallbackLoader tries S3 first and falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Prefix   string
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls
// back to the local file system. If s3Loader is nil only the file
// loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Prefix string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Prefix:   s3Prefix,
		logger:     logger.With().Str("component", "fallback-catalog-loader").Logger(),
	}
}

// Load attempts S3 first (with the configured prefix prepended), then
// the local file system with the source as-is.
func (l *fallbackLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	if l.s3Loader != nil {
		s3Key := l.s3Prefix + source

		l.logger.Info().
			Str("s3_key", s3Key).
			Str("local_fallback", source).
			Msg("attempting to load catalog from S3")

		products, err := l.s3Loader.Load(ctx, s3Key)
		if err == nil {
			return products, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", s3Key).
			Msg("failed to load catalog from S3, falling back to local file system")
	}

	return l.fileLoader.Load(ctx, source)
}
