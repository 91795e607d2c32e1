package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/database"
)

// HealthCheck reports service liveness, including database reachability.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "degraded",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// TestEndpoint is a diagnostic endpoint used by the frontend during setup.
func TestEndpoint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Backend is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root returns a short service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "portfolio-backend",
		"status":  "ok",
	})
}
