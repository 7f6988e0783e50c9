package config

import (
	"fmt"
	"os"
	"strconv"
)

// Store backends.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	Database    DatabaseConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	Seed        SeedConfig
	WooCommerce WooCommerceConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the catalog/build storage backend.
type StoreConfig struct {
	Backend string // "memory" or "postgres"
}

// DatabaseConfig holds database-related configuration. Only consulted
// when the postgres backend is selected.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. An empty APIKey
// disables API key checking entirely.
type AuthConfig struct {
	APIKey string
}

// SeedConfig controls where the startup product catalog comes from.
// With no source configured the embedded default catalog is used.
type SeedConfig struct {
	Source    string // path of a product JSON file (local, or key within the S3 bucket)
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// WooCommerceConfig holds the remote store credentials. All three values
// must be present for the order adapter to be considered configured.
type WooCommerceConfig struct {
	URL            string
	ConsumerKey    string
	ConsumerSecret string
}

// Configured reports whether all adapter credentials are present.
func (c *WooCommerceConfig) Configured() bool {
	return c.URL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}

// partial reports whether some but not all credentials are present.
func (c *WooCommerceConfig) partial() bool {
	any := c.URL != "" || c.ConsumerKey != "" || c.ConsumerSecret != ""
	return any && !c.Configured()
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreBackendMemory),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "pcbuilder"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Seed: SeedConfig{
			Source:    getEnv("SEED_SOURCE", ""),
			S3Enabled: getEnvAsBool("SEED_S3_ENABLED", false),
			S3Bucket:  getEnv("SEED_S3_BUCKET", ""),
			S3Region:  getEnv("SEED_S3_REGION", "us-east-1"),
			S3Prefix:  getEnv("SEED_S3_PREFIX", "catalog/"),
		},
		WooCommerce: WooCommerceConfig{
			URL:            getEnv("WOOCOMMERCE_URL", ""),
			ConsumerKey:    getEnv("WOOCOMMERCE_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("WOOCOMMERCE_CONSUMER_SECRET", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.Backend != StoreBackendMemory && c.Store.Backend != StoreBackendPostgres {
		return fmt.Errorf("invalid store backend: %s (must be memory or postgres)", c.Store.Backend)
	}

	if c.Store.Backend == StoreBackendPostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Seed.S3Enabled {
		if c.Seed.S3Bucket == "" {
			return fmt.Errorf("seed S3 bucket is required when seed S3 is enabled")
		}
		if c.Seed.S3Region == "" {
			return fmt.Errorf("seed S3 region is required when seed S3 is enabled")
		}
		if c.Seed.Source == "" {
			return fmt.Errorf("seed source is required when seed S3 is enabled")
		}
	}

	if c.WooCommerce.partial() {
		return fmt.Errorf("incomplete WooCommerce configuration: WOOCOMMERCE_URL, WOOCOMMERCE_CONSUMER_KEY and WOOCOMMERCE_CONSUMER_SECRET must be set together")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
