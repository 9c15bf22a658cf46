package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string
	LogLevel    string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Simulation service
	RunCacheTTLMinutes  int
	RunWorkerPollSecs   int
	MaxBoatsPerScenario int

	// Security
	JWTSecret           string
	AdminSessionMinutes int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/harborwatch?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Simulation service
		RunCacheTTLMinutes:  getEnvInt("RUN_CACHE_TTL_MINUTES", 60),
		RunWorkerPollSecs:   getEnvInt("RUN_WORKER_POLL_SECONDS", 5),
		MaxBoatsPerScenario: getEnvInt("MAX_BOATS_PER_SCENARIO", 500),

		// Security
		JWTSecret:           getEnv("JWT_SECRET", "change-me-in-production"),
		AdminSessionMinutes: getEnvInt("ADMIN_SESSION_MINUTES", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
