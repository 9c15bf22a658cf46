package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/harborwatch/backend/internal/admin"
	"github.com/harborwatch/backend/internal/config"
	"github.com/harborwatch/backend/internal/database"
	"github.com/harborwatch/backend/internal/logger"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
		log.Infof("Using default admin username: %s", username)
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		adminToken = "change-me-in-production"
		log.Warnf("Using default admin token. Set ADMIN_TOKEN env var in production!")
	}

	roles := []string{"operator"}
	if err := admin.CreateAdminAccount(db, username, adminToken, roles); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Infof("Admin account %q created/updated (roles: %v)", username, roles)
	log.Infof("Login at POST /api/v1/admin/login with this username and token")
}
