package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"techvault/database"
	"techvault/internal/cache"
	"techvault/internal/config"
	"techvault/internal/http-api/handler"
	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/repository"
	"techvault/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	recCache, err := cache.NewRecommendationCache(cfg.RedisURL)
	if err != nil {
		// The API works without Redis; recommendations just hit postgres
		// every time.
		logger.Warn("redis unavailable, recommendation caching disabled", "error", err)
		recCache = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	// recCache is *cache.RecommendationCache; pass nil interface when Redis
	// is down rather than a typed nil.
	var recommendationCache service.RecommendationCache
	if recCache != nil {
		recommendationCache = recCache
	}

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo, resourceRepo, recommendationCache, logger)
	resourceService := service.NewResourceService(resourceRepo, favoriteRepo, ratingRepo, recommendationCache, logger)
	recommendationService := service.NewRecommendationService(resourceRepo, favoriteRepo, recommendationCache, logger)
	favoriteService := service.NewFavoriteService(favoriteRepo, resourceRepo)
	profileService := service.NewProfileService(userRepo, resourceRepo, ratingRepo, favoriteRepo, referenceRepo)
	referenceService := service.NewReferenceService(referenceRepo)

	// Router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	requireAuth := middleware.AuthMiddleware(authService, userRepo)
	optionalAuth := middleware.OptionalAuthMiddleware(authService, userRepo)

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "database": "unreachable"})
			return
		}
		redisStatus := "disabled"
		if recCache != nil {
			redisStatus = "ok"
			if err := recCache.Ping(c.Request.Context()); err != nil {
				redisStatus = "unreachable"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok", "redis": redisStatus})
	})

	api := r.Group("/api")

	// Public routes (identity optional on reads)
	handler.NewAuthHandler(authService).RegisterRoutes(api, optionalAuth)
	handler.NewReferenceHandler(referenceService).RegisterRoutes(api)
	handler.NewResourceHandler(resourceService).RegisterRoutes(api, optionalAuth, requireAuth)

	// Protected routes
	protected := api.Group("", requireAuth)
	handler.NewRatingHandler(ratingService).RegisterRoutes(protected)
	handler.NewFavoriteHandler(favoriteService).RegisterRoutes(protected)
	handler.NewRecommendationHandler(recommendationService, resourceService).RegisterRoutes(protected)
	handler.NewProfileHandler(profileService).RegisterRoutes(protected)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	if recCache != nil {
		recCache.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
