package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bookshelf/database"
	"bookshelf/internal/blobstore"
	"bookshelf/internal/config"
	"bookshelf/internal/http-api/dto"
	"bookshelf/internal/http-api/handler"
	"bookshelf/internal/http-api/middleware"
	"bookshelf/internal/http-api/repository"
	"bookshelf/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Optional catalog cache
	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		cache = redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, catalog caching disabled", "error", err)
			cache = nil
		}
		cancel()
	}

	store, err := blobstore.New(context.Background(), blobstore.Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		log.Fatalf("could not set up object storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	catalogService := service.NewCatalogService(catalogRepo, cache, time.Duration(cfg.CacheTTL)*time.Second)
	libraryService := service.NewLibraryService(libraryRepo, catalogRepo, store)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	libraryHandler := handler.NewLibraryHandler(libraryService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api/v1")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Success("Berhasil", nil))
	})

	api.POST("/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Admin catalog endpoints, unprotected for now
	api.POST("/admin/addBooks", catalogHandler.AddBook)
	api.GET("/admin/getBooks", catalogHandler.GetAllBooks)
	api.DELETE("/admin/deleteBooks", catalogHandler.DeleteBookByTitle)

	authed := api.Group("/", middleware.AuthMiddleware(authService))
	authed.GET("/users/id", authHandler.GetUser)
	authed.POST("/users/books", libraryHandler.ManualAdd)
	authed.GET("/users/book", libraryHandler.GetLibrary)
	authed.POST("/users/libBooks", libraryHandler.AddToLibrary)
	authed.GET("/users/libBooks", libraryHandler.GetLibrary)
	authed.PATCH("/users/booksStatus/:bookId", libraryHandler.UpdateStatus)
	authed.DELETE("/users/books/:bookId", libraryHandler.DeleteBook)
	authed.PATCH("/users/books/:bookId", libraryHandler.UpdateBookData)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
