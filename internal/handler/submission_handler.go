package handler

import (
	"errors"
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

// SubmissionHandler handles the public submission endpoints
type SubmissionHandler struct {
	submissionService service.SubmissionService
	rateLimitService  service.RateLimitService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService service.SubmissionService, rateLimitService service.RateLimitService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		rateLimitService:  rateLimitService,
	}
}

// Create handles a new feedback or idea submission
// POST /api/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(errs))
		return
	}

	sub, err := h.submissionService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("failed to create submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create submission"))
		return
	}

	// The ledger entry is written after the row exists so a failed insert
	// never burns the session's budget
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.rateLimitService.Record(c.Request.Context(), sessionID, domain.ActionSubmission); err != nil {
			logger.Error("failed to record rate limit action", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, response.SuccessMessage("Submission created successfully", gin.H{"id": sub.ID}))
}

// List handles the public browse feed
// GET /api/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	var query dto.ListSubmissionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	subs, err := h.submissionService.ListPublic(c.Request.Context(), &query)
	if err != nil {
		logger.Error("failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch submissions"))
		return
	}

	c.JSON(http.StatusOK, response.Success(subs))
}

// GetByID handles retrieving one published submission with its responses
// GET /api/submissions/:id
func (h *SubmissionHandler) GetByID(c *gin.Context) {
	sub, err := h.submissionService.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Submission not found"))
			return
		}
		logger.Error("failed to fetch submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to fetch submission"))
		return
	}

	c.JSON(http.StatusOK, response.Success(sub))
}

// Vote handles a vote on a published submission
// POST /api/submissions/:id/vote
func (h *SubmissionHandler) Vote(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	counts, err := h.submissionService.Vote(c.Request.Context(), c.Param("id"), req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVoteType):
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid vote type"))
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Submission not found"))
		default:
			logger.Error("failed to record vote", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to record vote"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(counts))
}
