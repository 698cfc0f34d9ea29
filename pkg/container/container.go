package container

import (
	"context"
	"fmt"
	"time"

	"gaming-collection-backend/internal/config"
	infraCache "gaming-collection-backend/internal/infrastructure/cache"
	"gaming-collection-backend/internal/infrastructure/database"
	"gaming-collection-backend/pkg/cache"
	"gaming-collection-backend/pkg/logger"

	"gaming-collection-backend/internal/domains/game"
	gameHandler "gaming-collection-backend/internal/domains/game/handler"
	gameRepo "gaming-collection-backend/internal/domains/game/repository"
	gameService "gaming-collection-backend/internal/domains/game/service"
	"gaming-collection-backend/internal/domains/genre"
	genreHandler "gaming-collection-backend/internal/domains/genre/handler"
	genreRepo "gaming-collection-backend/internal/domains/genre/repository"
	genreService "gaming-collection-backend/internal/domains/genre/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the process lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	GenreRepo genre.Repository
	GameRepo  game.Repository

	GenreService genre.Service
	GameService  game.Service

	GenreHandler *genreHandler.GenreHandler
	GameHandler  *gameHandler.GameHandler
}

// NewContainer builds the whole graph in dependency order: config, then
// infrastructure, then repositories, services and handlers. A wrong order
// here is a nil pointer at startup, not at request time.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	// Redis is a read-through cache only; a failed connection degrades to
	// store reads instead of aborting startup.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis connection failed, continuing without cache hits", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.GameRepo = gameRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.GenreService = genreService.NewService(c.GenreRepo, c.Cache)
	// The game service takes the genre repository directly; the genre
	// existence check on writes is an explicit dependency, not a lookup
	// through some shared registry.
	c.GameService = gameService.NewService(c.GameRepo, c.GenreRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.GameHandler = gameHandler.NewGameHandler(c.GameService)
}

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis connection", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	logger.Info("container cleaned up", nil)
}
