package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harborwatch/backend/internal/config"
)

// CORSMiddleware returns a CORS middleware configured for the environment
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "Authorization",
			"Accept", "Cache-Control", "X-Requested-With",
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour, // Cache preflight responses
	}

	if cfg.Environment == "development" {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
		corsConfig.AllowCredentials = true
	} else {
		allowedOrigins := []string{}
		if cfg.FrontendURL != "" {
			allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
		}
		corsConfig.AllowOrigins = allowedOrigins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}

// WebSocketCORSCheck validates WebSocket upgrade origins
func WebSocketCORSCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.ToLower(c.GetHeader("Connection")) != "upgrade" ||
			strings.ToLower(c.GetHeader("Upgrade")) != "websocket" {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			c.JSON(400, gin.H{"error": "WebSocket origin required"})
			c.Abort()
			return
		}

		var allowed bool
		if cfg.Environment == "development" {
			allowed = strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		} else {
			allowed = cfg.FrontendURL != "" && origin == cfg.FrontendURL
		}

		if !allowed {
			c.JSON(403, gin.H{"error": "WebSocket origin not allowed"})
			c.Abort()
			return
		}

		c.Next()
	}
}
