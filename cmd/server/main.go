package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brunosduarte/sindestiva-api/docs"
	"github.com/brunosduarte/sindestiva-api/internal/auth"
	"github.com/brunosduarte/sindestiva-api/internal/config"
	"github.com/brunosduarte/sindestiva-api/internal/handler"
	"github.com/brunosduarte/sindestiva-api/internal/infrastructure/database"
	"github.com/brunosduarte/sindestiva-api/internal/logger"
	"github.com/brunosduarte/sindestiva-api/internal/metrics"
	"github.com/brunosduarte/sindestiva-api/internal/middleware"
	"github.com/brunosduarte/sindestiva-api/internal/repository"
	"github.com/brunosduarte/sindestiva-api/internal/service"
)

//	@title			Sindestiva API
//	@version		1.0.0
//	@description	REST backend for the dockworkers' union website: accounts, sessions and news articles.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	newsRepo := repository.NewPostgresNewsRepository(pool)

	// Initialize credential and token services
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokens)
	newsService := service.NewNewsService(newsRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsDevelopment())
	newsHandler := handler.NewNewsHandler(newsService, cfg.IsDevelopment())
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/documentation/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middleware.Authenticate(tokens, userRepo)

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/profile", authenticated, authHandler.GetProfile)
		authGroup.PUT("/profile", authenticated, authHandler.UpdateProfile)
		authGroup.PUT("/change-password", authenticated, authHandler.ChangePassword)
		authGroup.GET("/users", authenticated, middleware.RequireAdmin(), authHandler.ListUsers)
	}

	// News routes
	newsGroup := router.Group("/news")
	{
		newsGroup.GET("", newsHandler.List)
		newsGroup.POST("", authenticated, newsHandler.Create)
		newsGroup.GET("/my", authenticated, newsHandler.ListMine)
		newsGroup.GET("/:id", newsHandler.Get)
		newsGroup.PUT("/:id", authenticated, newsHandler.Update)
		newsGroup.DELETE("/:id", authenticated, newsHandler.Delete)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
