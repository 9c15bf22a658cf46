package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/sim"
	"github.com/harborwatch/backend/internal/ws"
)

// HandleRunWebSocket streams a run's collision timeline over WebSocket.
func HandleRunWebSocket(m *sim.Manager, hub *ws.Hub, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		ws.HandleRunSocket(c.Writer, c.Request, token, m, hub, log)
	}
}
