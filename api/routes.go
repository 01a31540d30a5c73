package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/catalog-api/api/health"
	"github.com/killallgit/catalog-api/api/links"
	"github.com/killallgit/catalog-api/api/timestamps"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/api/version"
	"github.com/killallgit/catalog-api/api/videos"
	_ "github.com/killallgit/catalog-api/docs/swagger"
	"github.com/killallgit/catalog-api/internal/services/cache"
	linksService "github.com/killallgit/catalog-api/internal/services/links"
	timestampsService "github.com/killallgit/catalog-api/internal/services/timestamps"
	videosService "github.com/killallgit/catalog-api/internal/services/videos"
	"github.com/killallgit/catalog-api/internal/services/youtube"
	"github.com/killallgit/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.ShareBaseURL == "" {
		deps.ShareBaseURL = cfg.Share.BaseURL
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.VideoService == nil {
			if err := initializeVideoService(deps, cfg); err != nil {
				return err
			}
		}
		if deps.TimestampService == nil {
			initializeTimestampService(deps, cfg)
		}
		if deps.LinkService == nil {
			deps.LinkService = linksService.NewService(linksService.NewRepository(deps.DB.DB))
		}
	}

	// Register video routes with general rate limiting (10 req/s, burst of 20)
	videoGroup := v1.Group("/videos")
	videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	videos.RegisterRoutes(videoGroup, deps)
	timestamps.RegisterVideoRoutes(videoGroup, deps)
	links.RegisterVideoRoutes(videoGroup, deps)

	// Register standalone timestamp routes (10 req/s, burst of 20)
	timestampGroup := v1.Group("/timestamps")
	timestampGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	timestamps.RegisterRoutes(timestampGroup, deps)

	// Register standalone link routes with higher limits: shared-token
	// resolution is the public-facing hot path (20 req/s, burst of 30)
	linkGroup := v1.Group("/links")
	linkGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
	links.RegisterRoutes(linkGroup, deps)

	return nil
}

// initializeVideoService creates and configures the video service
func initializeVideoService(deps *types.Dependencies, cfg *config.Config) error {
	repo := videosService.NewRepository(deps.DB.DB)

	// The Data API client needs a key; without one the oEmbed fallback still
	// resolves title/channel/thumbnail, just not the duration
	var fetcher youtube.MetadataFetcher
	if cfg.YouTube.APIKey != "" {
		dataClient, err := youtube.NewDataAPIClient(context.Background(), cfg.YouTube.APIKey)
		if err != nil {
			return fmt.Errorf("creating youtube data api client: %w", err)
		}
		fetcher = dataClient
	} else {
		log.Printf("[WARN] No YouTube API key configured, using oEmbed fallback")
		fetcher = youtube.NewClient(youtube.Config{
			RequestsPerMinute: cfg.YouTube.RateLimit,
			Timeout:           cfg.YouTube.Timeout,
			MaxRetries:        cfg.YouTube.RetryAttempts,
		})
	}

	opts := []videosService.Option{}
	if store := buildCache(cfg); store != nil {
		opts = append(opts, videosService.WithCache(store))
	}

	deps.VideoService = videosService.NewService(repo, fetcher, opts...)
	return nil
}

// initializeTimestampService wires the configured persistence strategy
func initializeTimestampService(deps *types.Dependencies, cfg *config.Config) {
	var store timestampsService.Store
	if cfg.Timestamps.Store == "memory" {
		log.Printf("[WARN] Timestamps use the in-memory store; bookmarks do not survive restarts")
		store = timestampsService.NewMemoryStore()
	} else {
		store = timestampsService.NewRepository(deps.DB.DB)
	}

	opts := []timestampsService.Option{}
	if videoService := deps.VideoService; videoService != nil {
		opts = append(opts, timestampsService.WithVideoDuration(func(ctx context.Context, videoID uint) (int, error) {
			video, err := videoService.GetVideo(ctx, videoID)
			if err != nil {
				return 0, err
			}
			return video.Duration, nil
		}))
	}
	deps.TimestampService = timestampsService.NewService(store, opts...)
}

// buildCache selects the cache backend; Redis when configured, else memory
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemoryCache(0)
	}

	redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	if err != nil {
		log.Printf("[WARN] Redis cache unavailable at %s, falling back to memory: %v", cfg.Cache.RedisAddr, err)
		return cache.NewMemoryCache(0)
	}
	return redisCache
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Message: "The requested endpoint was not found",
			Errors:  []string{c.Request.URL.Path},
		})
	}
}
