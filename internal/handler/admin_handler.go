package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/dto"
	"github.com/maydeploy/event-feedback-app/internal/middleware"
	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// sessionCookieMaxAge matches the hard cap on the signed token's life.
// The server-side session usually dies long before the cookie does.
const sessionCookieMaxAge = 12 * 60 * 60

// AdminHandler handles the admin API: session management, moderation,
// collaboration pipeline, and event management.
type AdminHandler struct {
	authService          service.AuthService
	submissionService    service.SubmissionService
	collaborationService service.CollaborationService
	eventService         service.EventService
	cookieSecure         bool
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	authService service.AuthService,
	submissionService service.SubmissionService,
	collaborationService service.CollaborationService,
	eventService service.EventService,
	cookieSecure bool,
) *AdminHandler {
	return &AdminHandler{
		authService:          authService,
		submissionService:    submissionService,
		collaborationService: collaborationService,
		eventService:         eventService,
		cookieSecure:         cookieSecure,
	}
}

// Login handles admin authentication
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Password is required"))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid password"))
			return
		}
		logger.Error("failed to log admin in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Login failed"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, response.SuccessMessage("Login successful", nil))
}

// Logout handles admin session termination
// POST /api/admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			logger.Error("failed to log admin out", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Logout failed"))
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, response.SuccessMessage("Logout successful", nil))
}

// ListPending handles the moderation queue
// GET /api/admin/pending
func (h *AdminHandler) ListPending(c *gin.Context) {
	subs, err := h.submissionService.ListPending(c.Request.Context())
	if err != nil {
		logger.Error("failed to list pending submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch pending submissions"))
		return
	}

	c.JSON(http.StatusOK, response.Success(subs))
}

// ListPublished handles the published submissions overview
// GET /api/admin/published
func (h *AdminHandler) ListPublished(c *gin.Context) {
	subs, err := h.submissionService.ListPublished(c.Request.Context())
	if err != nil {
		logger.Error("failed to list published submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch published submissions"))
		return
	}

	c.JSON(http.StatusOK, response.Success(subs))
}

// Approve handles publishing a pending submission
// PUT /api/admin/submissions/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	// an empty body means approve as-is
	var req dto.ApproveSubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}
	}

	sub, err := h.submissionService.Approve(c.Request.Context(), c.Param("id"), req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Submission not found"))
			return
		}
		logger.Error("failed to approve submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to approve submission"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Submission approved", sub))
}

// Reject handles rejecting a pending submission, which deletes it.
// Rejecting an id that no longer exists still succeeds.
// DELETE /api/admin/submissions/:id/reject
func (h *AdminHandler) Reject(c *gin.Context) {
	if err := h.submissionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to reject submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to reject submission"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Submission rejected and deleted", nil))
}

// UpdateStatus handles moving a submission between workflow statuses
// PUT /api/admin/submissions/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	sub, err := h.submissionService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid status"))
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Submission not found"))
		default:
			logger.Error("failed to update submission status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update status"))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Status updated", sub))
}

// AddResponse handles attaching an admin reply to a submission
// POST /api/admin/submissions/:id/response
func (h *AdminHandler) AddResponse(c *gin.Context) {
	var req dto.AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Response text is required"))
		return
	}

	resp, err := h.submissionService.AddResponse(c.Request.Context(), c.Param("id"), req.ResponseText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyResponseText):
			c.JSON(http.StatusBadRequest, response.BadRequest("Response text is required"))
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Submission not found"))
		default:
			logger.Error("failed to add admin response", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to add response"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMessage("Response added", resp))
}

// DeleteSubmission handles removing a submission outright
// DELETE /api/admin/submissions/:id
func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	if err := h.submissionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete submission"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Submission deleted", nil))
}

// ListCollaborations handles the collaboration pipeline overview
// GET /api/admin/collaborations
func (h *AdminHandler) ListCollaborations(c *gin.Context) {
	offers, err := h.collaborationService.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list collaborations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch collaborations"))
		return
	}

	c.JSON(http.StatusOK, response.Success(offers))
}

// UpdateCollaboration handles moving an offer through the pipeline
// PUT /api/admin/collaborations/:id
func (h *AdminHandler) UpdateCollaboration(c *gin.Context) {
	var req dto.UpdateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	offer, err := h.collaborationService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCollabStatus):
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid status"))
		case errors.Is(err, service.ErrCollaborationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Collaboration offer not found"))
		default:
			logger.Error("failed to update collaboration", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update collaboration"))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Collaboration updated", offer))
}

// CreateEvent handles adding a new event
// POST /api/admin/events
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(errs))
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create event"))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessMessage("Event created", event))
}

// UpdateEvent handles replacing an event's fields
// PUT /api/admin/events/:id
func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(errs))
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		logger.Error("failed to update event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update event"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Event updated", event))
}

// DeleteEvent handles removing an event
// DELETE /api/admin/events/:id
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete event"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Event deleted", nil))
}
