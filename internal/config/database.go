package config

import (
	"videohub-backend/internal/infrastructure/database"
)

// MongoDatabaseConfig converts the loaded Mongo settings to the infrastructure config
func (c *Config) MongoDatabaseConfig() *database.MongoConfig {
	return &database.MongoConfig{
		URI:            c.Mongo.URI,
		Database:       c.Mongo.Database,
		Collection:     c.Mongo.Collection,
		ConnectTimeout: c.Mongo.ConnectTimeout,
	}
}

// PostgresDatabaseConfig converts the loaded PostgreSQL settings to the infrastructure config
func (c *Config) PostgresDatabaseConfig() *database.DBConfig {
	return &database.DBConfig{
		URL:            c.Postgres.URL,
		MaxConns:       int32(c.Postgres.MaxConns),
		MinConns:       int32(c.Postgres.MinConns),
		ConnectTimeout: c.Postgres.ConnectTimeout,
	}
}
