package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/admin"
	"github.com/harborwatch/backend/internal/config"
	"github.com/harborwatch/backend/internal/sim"
)

// AdminLogin validates admin credentials and issues a short-lived JWT.
func AdminLogin(db *sqlx.DB, cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Token    string `json:"token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and token required"})
			return
		}

		account, err := admin.ValidateCredentials(db, req.Username, req.Token)
		if err != nil {
			log.Warnf("[ADMIN] Failed login for %s: %v", req.Username, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		exp := time.Now().Add(time.Duration(cfg.AdminSessionMinutes) * time.Minute)
		claims := jwt.MapClaims{
			"username": account.Username,
			"roles":    []string(account.Roles),
			"exp":      exp.Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			log.Errorf("[ADMIN] Failed to sign JWT for %s: %v", account.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
			return
		}

		log.Infof("[ADMIN] %s logged in", account.Username)
		c.JSON(http.StatusOK, gin.H{
			"token":      signed,
			"expires_at": exp.UTC(),
		})
	}
}

// AdminAuth guards admin routes with a Bearer JWT.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		parsed, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		if username, ok := claims["username"].(string); ok {
			c.Set("admin_username", username)
		}

		c.Next()
	}
}

// AdminListRuns returns recent runs for the admin dashboard.
func AdminListRuns(m *sim.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		runs, err := m.ListRuns(c.Request.Context(), limit)
		if err != nil {
			log.Errorf("[ADMIN] Failed to list runs: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
	}
}
