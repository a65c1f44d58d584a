package main

import (
	"log"
	"time"

	"invoice-dashboard-backend/internal/auth"
	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to init database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Invoice{},
		&models.Customer{},
		&models.User{},
	); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	var routeCache cache.RouteCache
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("failed to init redis", zap.Error(err))
		}
		routeCache = cache.NewRedisRouteCache(client, logger)
	} else {
		logger.Warn("REDIS_ADDR not set, using in-memory route cache")
		routeCache = cache.NewMemoryRouteCache()
	}

	if cfg.SessionSecret == "" {
		logger.Fatal("SESSION_SECRET is not set")
	}
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, routeCache, sessions, logger)

	r.Run(":" + cfg.Port)
}
