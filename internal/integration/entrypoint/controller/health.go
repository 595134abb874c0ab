// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	backend              string
	storageHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(backend string, storageHealthChecker func() bool) *HealthController {
	return &HealthController{
		backend:              backend,
		storageHealthChecker: storageHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage backend.
func (h *HealthController) Check(c *gin.Context) {
	storageStatus := "disconnected"
	if h.storageHealthChecker != nil && h.storageHealthChecker() {
		storageStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Backend:   h.backend,
		Storage:   storageStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
