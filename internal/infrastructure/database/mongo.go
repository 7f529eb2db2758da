package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultMongoDatabase matches what the MongoDB tooling picks when the URI carries no database
const defaultMongoDatabase = "test"

// MongoConfig groups everything needed to reach the document store
type MongoConfig struct {
	URI            string        // mongodb:// or mongodb+srv:// connection string
	Database       string        // overrides the database in the URI path
	Collection     string        // collection holding the video documents
	ConnectTimeout time.Duration // bound for the initial connect + ping
}

// MongoDB wraps the driver client and its lifecycle.
// The driver pools connections internally, one client serves every request.
type MongoDB struct {
	Client *mongo.Client
	Config *MongoConfig
}

var _ Connection = (*MongoDB)(nil)

func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{
		Config: config,
		Client: nil, // set by Connect
	}
}

func (db *MongoDB) Name() string { return "MongoDB" }

// Connect opens the client and verifies the primary answers a ping.
// There is no retry: a failed first connection is reported to the caller, who exits.
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Info().Str("database", db.DatabaseName()).Msg("[MONGO] Connecting to MongoDB...")

	connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(db.Config.URI))
	if err != nil {
		return fmt.Errorf("mongo connect failed: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	db.Client = client
	log.Info().Msg("[MONGO] Connected successfully")
	return nil
}

// DatabaseName resolves the target database: explicit config, then URI path, then "test"
func (db *MongoDB) DatabaseName() string {
	if db.Config.Database != "" {
		return db.Config.Database
	}
	if u, err := url.Parse(db.Config.URI); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultMongoDatabase
}

// Collection returns the configured video collection handle
func (db *MongoDB) Collection() *mongo.Collection {
	return db.Client.Database(db.DatabaseName()).Collection(db.Config.Collection)
}

func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
