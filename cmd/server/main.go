package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harborwatch/backend/internal/api"
	"github.com/harborwatch/backend/internal/config"
	"github.com/harborwatch/backend/internal/database"
	"github.com/harborwatch/backend/internal/logger"
	"github.com/harborwatch/backend/internal/migrations"
	"github.com/harborwatch/backend/internal/redis"
	"github.com/harborwatch/backend/internal/sim"
	"github.com/harborwatch/backend/internal/ws"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize configuration and logging
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations on start if requested
	if os.Getenv("MIGRATE_ON_START") == "true" {
		log.Infof("[MIGRATE] Running DB migrations on startup...")
		if err := migrations.RunMigrations(cfg.DatabaseURL, log); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	// Simulation run manager
	manager := sim.NewManager(db, rdb, cfg, log)

	// Background worker for queued runs
	go manager.StartRunWorker(context.Background())

	// WebSocket hub + run completion subscriber
	hub := ws.NewHub()
	ws.StartRunCompleteSubscriber(context.Background(), rdb, hub, log)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, db, manager, hub, cfg, log)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Starting HarborWatch server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
