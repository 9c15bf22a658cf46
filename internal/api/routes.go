package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/api/handlers"
	"github.com/harborwatch/backend/internal/config"
	"github.com/harborwatch/backend/internal/middleware"
	"github.com/harborwatch/backend/internal/sim"
	"github.com/harborwatch/backend/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, m *sim.Manager, hub *ws.Hub, cfg *config.Config, log *logrus.Logger) {
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.WebSocketCORSCheck(cfg))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Scenario endpoints
		scenario := v1.Group("/scenario")
		{
			scenario.POST("", handlers.SubmitScenario(m, log))
			scenario.POST("/raw", handlers.SubmitRawScenario(m, log))
			scenario.POST("/queue", handlers.QueueScenario(m, log))
		}

		// Run endpoints
		run := v1.Group("/run")
		{
			run.GET("/:token", handlers.GetRun(m, log))
			run.GET("/:token/ws", handlers.HandleRunWebSocket(m, hub, log))
		}

		// Admin endpoints
		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", handlers.AdminLogin(db, cfg, log))
			adminGroup.GET("/runs", handlers.AdminAuth(cfg), handlers.AdminListRuns(m, log))
		}
	}
}
