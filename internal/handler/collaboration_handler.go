package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/dto"
	"github.com/maydeploy/event-feedback-app/internal/middleware"
	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// CollaborationHandler handles the public collaboration endpoint
type CollaborationHandler struct {
	collaborationService service.CollaborationService
	rateLimitService     service.RateLimitService
}

// NewCollaborationHandler creates a new CollaborationHandler
func NewCollaborationHandler(collaborationService service.CollaborationService, rateLimitService service.RateLimitService) *CollaborationHandler {
	return &CollaborationHandler{
		collaborationService: collaborationService,
		rateLimitService:     rateLimitService,
	}
}

// Create handles a new collaboration offer
// POST /api/collaborations
func (h *CollaborationHandler) Create(c *gin.Context) {
	var req dto.CreateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(errs))
		return
	}

	offer, err := h.collaborationService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("failed to create collaboration offer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to submit collaboration offer"))
		return
	}

	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.rateLimitService.Record(c.Request.Context(), sessionID, domain.ActionCollaboration); err != nil {
			logger.Error("failed to record rate limit action", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, response.SuccessMessage("Collaboration offer submitted successfully", gin.H{"id": offer.ID}))
}
