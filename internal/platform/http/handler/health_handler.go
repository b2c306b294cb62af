// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmark_backend/internal/api"
)

// now is swapped in tests.
var now = time.Now

// Health handles GET and HEAD /api/health. It needs no authentication and
// never touches the database.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:    "ok",
		Timestamp: now().UTC().Format(time.RFC3339Nano),
	})
}
