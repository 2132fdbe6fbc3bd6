package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is a public health check endpoint. It has no dependencies and no
// side effects: it answers even when the database or model provider is
// unconfigured.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Veteran Compass Corps API is running",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}
