package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/dto"
	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// EventHandler handles the public event endpoints
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List handles the public events listing with optional filters
// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	var query dto.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	events, err := h.eventService.List(c.Request.Context(), &query)
	if err != nil {
		logger.Error("failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch events"))
		return
	}

	c.JSON(http.StatusOK, response.Success(events))
}

// GetByID handles retrieving one event
// GET /api/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		logger.Error("failed to fetch event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch event"))
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}
