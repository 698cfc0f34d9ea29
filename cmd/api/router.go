package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gaming-collection-backend/internal/shared/middleware"
	"gaming-collection-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupGenreRoutes(api, c)
		setupGameRoutes(api, c)
	}

	return router
}

func setupGenreRoutes(api *gin.RouterGroup, c *container.Container) {
	genres := api.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/active", c.GenreHandler.ListActive)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.POST("", c.GenreHandler.Create)
		genres.PUT("/:id", c.GenreHandler.Update)
		genres.DELETE("/:id", c.GenreHandler.SoftDelete)
		genres.PATCH("/:id/restore", c.GenreHandler.Restore)
		genres.DELETE("/:id/permanent", c.GenreHandler.PermanentDelete)
	}
}

func setupGameRoutes(api *gin.RouterGroup, c *container.Container) {
	games := api.Group("/games")
	{
		games.GET("", c.GameHandler.List)
		games.GET("/export", c.GameHandler.Export)
		games.GET("/search/:term", c.GameHandler.SearchByTitle)
		games.GET("/by-status/:status", c.GameHandler.GetByStatus)
		games.GET("/by-platform/:platform", c.GameHandler.GetByPlatform)
		games.GET("/:id", c.GameHandler.GetByID)
		games.POST("", c.GameHandler.Create)
		games.PUT("/:id", c.GameHandler.Update)
		games.DELETE("/:id", c.GameHandler.SoftDelete)
		games.PATCH("/:id/soft-delete", c.GameHandler.SoftDelete)
		games.PATCH("/:id/restore", c.GameHandler.Restore)
		games.DELETE("/:id/permanent", c.GameHandler.PermanentDelete)
	}
}

// healthCheckHandler reports database and cache connectivity.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		status := http.StatusOK
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			// Cache is optional; report but stay healthy.
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"success":   status == http.StatusOK,
			"message":   "health check",
			"database":  dbStatus,
			"cache":     cacheStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
