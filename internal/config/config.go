package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Discord configuration
	Token   string
	AppID   string
	GuildID string

	// Storage
	StorageType string // "sqlite" or "memory"
	DataDir     string

	// Elasticsearch ledger archive (optional; empty URL disables)
	ElasticsearchURL      string
	ElasticsearchUser     string
	ElasticsearchPassword string

	// Engine
	DecayInterval time.Duration

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	decayInterval, err := time.ParseDuration(getEnvWithDefault("DECAY_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DECAY_INTERVAL: %w", err)
	}

	cfg := &Config{
		Token:                 os.Getenv("DISCORD_TOKEN"),
		AppID:                 os.Getenv("APP_ID"),
		GuildID:               os.Getenv("GUILD_ID"),
		StorageType:           getEnvWithDefault("STORAGE_TYPE", "sqlite"),
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUser:     os.Getenv("ELASTICSEARCH_USER"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		DecayInterval:         decayInterval,
		Environment:           getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	if c.StorageType != "sqlite" && c.StorageType != "memory" {
		return fmt.Errorf("STORAGE_TYPE must be sqlite or memory, got %q", c.StorageType)
	}
	return nil
}

// DatabasePath returns the SQLite database location
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "fintamago.db")
}

// ArchiveEnabled reports whether the Elasticsearch ledger archive is configured
func (c *Config) ArchiveEnabled() bool {
	return c.ElasticsearchURL != ""
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
