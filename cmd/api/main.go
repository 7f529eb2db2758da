package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"videohub-backend/internal/config"
	"videohub-backend/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env for local development, system environment in production
	hasDotEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if !hasDotEnv {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("environment", cfg.App.Environment).
		Str("store", cfg.Store.Driver).
		Msg("Starting")

	Serve(cfg)
}
