package handlers

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/sim"
)

// maxRawCaseBytes bounds the plain-text scenario body.
const maxRawCaseBytes = 1 << 20

// SubmitScenario accepts a JSON scenario, runs it synchronously and returns
// the run token, per-boat verdicts and the collision timeline.
func SubmitScenario(m *sim.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sim.ScenarioInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scenario: " + err.Error()})
			return
		}

		result, err := m.RunScenario(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Infof("[SCENARIO] Ran %s: %d boats, %d islands, %d events",
			result.Token, len(req.Boats), len(req.Islands), len(result.Events))
		c.JSON(http.StatusOK, result)
	}
}

// SubmitRawScenario accepts the plain-text case format: boat and island
// counts, then one line per boat and per island.
func SubmitRawScenario(m *sim.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRawCaseBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		boats, islands, err := sim.ParseCase(string(body))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req := sim.ScenarioInput{
			Boats:   make([]sim.BoatInput, len(boats)),
			Islands: make([]sim.IslandInput, len(islands)),
		}
		for i, b := range boats {
			req.Boats[i] = sim.BoatInput{X: b.Start.X, Y: b.Start.Y, Heading: b.Heading, Speed: b.Speed}
		}
		for i, is := range islands {
			req.Islands[i] = sim.IslandInput{X: is.Center.X, Y: is.Center.Y, Radius: is.Radius}
		}

		result, err := m.RunScenario(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Infof("[SCENARIO] Ran raw case %s: %d boats, %d islands",
			result.Token, len(boats), len(islands))
		c.JSON(http.StatusOK, result)
	}
}

// QueueScenario enqueues a scenario for the background run worker.
func QueueScenario(m *sim.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sim.ScenarioInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scenario: " + err.Error()})
			return
		}

		token, err := m.QueueScenario(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"token": token, "status": "QUEUED"})
	}
}

// GetRun returns a run result by token.
func GetRun(m *sim.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		result, err := m.GetRun(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
				return
			}
			log.Errorf("[SCENARIO] Failed to load run %s: %v", token, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load run"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
