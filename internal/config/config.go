package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for STORE_DRIVER
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the whole application configuration.
// It is populated from environment variables (and an optional .env file).
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type StoreConfig struct {
	Driver string // mongo, postgres, memory
}

type MongoConfig struct {
	URI            string
	Database       string // empty -> database from URI path, else "test"
	Collection     string
	ConnectTimeout time.Duration
}

type PostgresConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	ConnectTimeout time.Duration
}

// LoadDotEnv loads a .env file when present.
// Returns false when no file was found; system environment is used as-is then.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "VideoHub API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", DriverMongo),
		},
		Mongo: MongoConfig{
			URI:            os.Getenv("MONGO_URI"),
			Database:       os.Getenv("MONGO_DATABASE"),
			Collection:     getEnv("MONGO_COLLECTION", "videos"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			URL:            os.Getenv("DATABASE_URL"),
			MaxConns:       getEnvInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvInt("DB_MIN_CONNS", 2),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected store has what it needs to connect
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.App.Port)
	}

	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI must be set when STORE_DRIVER=%s", DriverMongo)
		}
		if c.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_COLLECTION must not be empty")
		}
	case DriverPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL must be set when STORE_DRIVER=%s", DriverPostgres)
		}
		if c.Postgres.MinConns > c.Postgres.MaxConns {
			return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.Postgres.MinConns, c.Postgres.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %s, %s or %s)",
			c.Store.Driver, DriverMongo, DriverPostgres, DriverMemory)
	}

	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
