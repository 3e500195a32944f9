package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Version is reported by /health. It is set at build time with -ldflags.
var Version = "dev"

// HealthHandler handles health check requests.
type HealthHandler struct {
	contentDir string
}

// NewHealthHandler creates a new HealthHandler checking contentDir.
func NewHealthHandler(contentDir string) *HealthHandler {
	return &HealthHandler{contentDir: contentDir}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"content": "healthy",
	}

	if err := h.checkContent(); err != nil {
		services["content"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.checkContent(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) checkContent() error {
	if _, err := os.ReadDir(h.contentDir); err != nil {
		return fmt.Errorf("read content directory: %w", err)
	}
	return nil
}
