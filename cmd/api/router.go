package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"videohub-backend/internal/shared/middleware"
	"videohub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		c.Metrics.Handler(),
		middleware.CORS(),
	)

	router.GET("/", statusHandler(c))
	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		setupVideoRoutes(api, c)
	}

	return router
}

// ========================================
// VIDEO ROUTES
// ========================================
func setupVideoRoutes(api *gin.RouterGroup, c *container.Container) {
	videos := api.Group("/videos")
	{
		videos.POST("", c.VideoHandler.Create)
		videos.GET("", c.VideoHandler.List)
		videos.GET("/:id", c.VideoHandler.GetByID)
		videos.PUT("/:id", c.VideoHandler.Update)
		videos.DELETE("/:id", c.VideoHandler.Delete)
	}
}

// ========================================
// STATUS LINE
// ========================================
func statusHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "Connected"
		if appCtx.DB.HealthCheck(ctx) != nil {
			status = "Disconnected"
		}

		c.String(http.StatusOK, "Server is running... %s connection status: %s", appCtx.DB.Name(), status)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
