package container

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"videohub-backend/internal/config"
	"videohub-backend/internal/infrastructure/database"
	"videohub-backend/internal/shared/middleware"

	videoHandler "videohub-backend/internal/domains/video/handler"
	videoRepo "videohub-backend/internal/domains/video/repository"
	videoService "videohub-backend/internal/domains/video/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// It owns the store connection: NewContainer opens it, Cleanup closes it.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config   *config.Config
	DB       database.Connection
	Registry *prometheus.Registry
	Metrics  *middleware.Metrics

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	VideoRepo videoRepo.VideoRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	VideoService videoService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	VideoHandler *videoHandler.VideoHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer connects the store selected by cfg.Store.Driver and wires every layer.
// Order matters: infrastructure -> repositories -> services -> handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("driver", cfg.Store.Driver).Msg("Initializing container...")

	conn, repo, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := Build(cfg, conn, repo)
	log.Info().Msg("Container initialized successfully")
	return c, nil
}

// Build wires services and handlers on top of an already open store
func Build(cfg *config.Config, conn database.Connection, repo videoRepo.VideoRepository) *Container {
	c := &Container{
		Config:    cfg,
		DB:        conn,
		VideoRepo: repo,
	}

	c.initMetrics()
	c.initServices()
	c.initHandlers()

	return c
}

// openStore opens the connection and the matching repository, bootstrapping
// indexes/schema. Any failure here is fatal for the process.
func openStore(ctx context.Context, cfg *config.Config) (database.Connection, videoRepo.VideoRepository, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		db := database.NewMongoDB(cfg.MongoDatabaseConfig())
		if err := db.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}

		repo := videoRepo.NewMongoRepository(db.Collection())
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = db.Close(context.Background())
			return nil, nil, err
		}
		return db, repo, nil

	case config.DriverPostgres:
		db := database.NewPostgresDB(cfg.PostgresDatabaseConfig())
		if err := db.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}

		repo := videoRepo.NewPostgresRepository(db.Pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close(context.Background())
			return nil, nil, err
		}
		return db, repo, nil

	case config.DriverMemory:
		log.Warn().Msg("Using in-memory store, records are lost on restart")
		return database.NewInMemory(), videoRepo.NewMemoryRepository(), nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initMetrics uses a private registry so tests can build several containers
func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = middleware.NewMetrics(c.Registry)
}

func (c *Container) initServices() {
	c.VideoService = videoService.NewVideoService(c.VideoRepo)
}

func (c *Container) initHandlers() {
	c.VideoHandler = videoHandler.NewVideoHandler(c.VideoService)
}

// Cleanup releases the store connection. Called on graceful shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.DB.Close(ctx); err != nil {
		log.Error().Err(err).Str("store", c.DB.Name()).Msg("Failed to close store connection")
		return
	}
	log.Info().Str("store", c.DB.Name()).Msg("Store connection closed")
}
