// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"ootd/internal/cache"
	"ootd/internal/config"
	"ootd/internal/database"
	"ootd/internal/middleware"
	"ootd/internal/repository"
	"ootd/internal/service"
	"ootd/internal/weather"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config            *config.Config
	db                *gorm.DB
	redis             *redis.Client
	promMiddleware    *fiberprometheus.FiberPrometheus
	userRepo          repository.UserRepository
	clothingRepo      repository.ClothingRepository
	outfitRepo        repository.OutfitRepository
	collectionRepo    repository.CollectionRepository
	postRepo          repository.PostRepository
	weatherProvider   weather.Provider
	closetService     *service.ClosetService
	outfitService     *service.OutfitService
	collectionService *service.CollectionService
	feedService       *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	clothingRepo := repository.NewClothingRepository(db)
	outfitRepo := repository.NewOutfitRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	postRepo := repository.NewPostRepository(db)

	prom := middleware.InitMetrics("ootd-api")

	// Weather starts as static config-backed conditions; the cached
	// wrapper keeps the lookup path identical once a live provider
	// replaces the static one.
	var provider weather.Provider = weather.StaticProvider{Conditions: weather.Conditions{
		CityName:     cfg.WeatherCity,
		TemperatureF: cfg.WeatherTempF,
		Description:  cfg.WeatherDesc,
	}}
	if redisClient != nil {
		provider = weather.NewCachedProvider(provider)
	}

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		userRepo:        userRepo,
		clothingRepo:    clothingRepo,
		outfitRepo:      outfitRepo,
		collectionRepo:  collectionRepo,
		postRepo:        postRepo,
		weatherProvider: provider,
	}
	server.closetService = service.NewClosetService(clothingRepo)
	server.outfitService = service.NewOutfitService(outfitRepo, provider)
	server.collectionService = service.NewCollectionService(collectionRepo, outfitRepo)
	server.feedService = service.NewFeedService(postRepo, outfitRepo)

	return server
}

// Shutdown releases server-held resources (database pool, Redis client).
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "OOTD Backend Metrics Dashboard",
	}))

	// Weather context (public, read-only)
	api.Get("/weather", s.GetWeather)

	// Everything below requires the current-user context
	protected := api.Group("", middleware.CurrentUser)

	// Current user profile
	protected.Get("/me", s.GetCurrentUser)

	// Closet routes
	items := protected.Group("/items")
	items.Get("/", s.GetItems)
	items.Post("/", s.CreateItem)
	items.Get("/:id", s.GetItem)
	items.Put("/:id", s.UpdateItem)
	items.Delete("/:id", s.DeleteItem)

	// Outfit routes
	outfits := protected.Group("/outfits")
	outfits.Get("/", s.GetOutfits)
	outfits.Post("/", s.CreateOutfit)
	// Define specific /picks routes BEFORE generic /:id route
	outfits.Get("/picks/today", s.GetTodaysPicks)
	outfits.Get("/picks/most-worn", s.GetMostWorn)
	outfits.Post("/:id/favorite", s.ToggleFavorite)
	outfits.Post("/:id/wear", s.MarkWorn)
	outfits.Get("/:id", s.GetOutfit)
	outfits.Put("/:id", s.UpdateOutfit)
	outfits.Delete("/:id", s.DeleteOutfit)

	// Collection routes
	collections := protected.Group("/collections")
	collections.Get("/", s.GetCollections)
	collections.Post("/", s.CreateCollection)
	// Specific /upcoming route before generic /:id
	collections.Get("/upcoming", s.GetUpcomingCollections)
	collections.Post("/:id/outfits/:outfitId", s.AddOutfitToCollection)
	collections.Delete("/:id/outfits/:outfitId", s.RemoveOutfitFromCollection)
	collections.Post("/:id/archive", s.ArchiveCollection)
	collections.Post("/:id/restore", s.RestoreCollection)
	collections.Get("/:id", s.GetCollection)
	collections.Put("/:id", s.UpdateCollection)
	collections.Delete("/:id", s.DeleteCollection)

	// Feed routes
	feed := protected.Group("/feed")
	feed.Get("/", s.GetFeed)

	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/reactions/:kind", s.ToggleReaction)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app degrades without Redis but readiness reports it
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// GetWeather handles GET /api/weather
func (s *Server) GetWeather(c *fiber.Ctx) error {
	cond, err := s.weatherProvider.Current(c.Context())
	if err != nil {
		// No weather is not an error surface; serve the ranking default.
		cond = weather.Conditions{
			CityName:     s.config.WeatherCity,
			TemperatureF: 70,
			Description:  "Unavailable",
		}
	}
	return c.JSON(cond)
}
