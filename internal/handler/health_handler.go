package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maydeploy/event-feedback-app/pkg/database"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler. A nil db means the service
// runs on in-memory storage and is always healthy.
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles the health check
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			dbStatus = "unreachable"
		}
	}

	status := http.StatusOK
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response.Success(gin.H{
		"status":   "ok",
		"database": dbStatus,
	}))
}
