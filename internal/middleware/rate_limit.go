package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// RateLimit enforces the per-session write budget for one action type.
// It must run after RequireSession, which guarantees the session ID.
func RateLimit(limiter service.RateLimitService, actionType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := GetSessionID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.BadRequest("Session ID required"))
			return
		}

		allowed, message, err := limiter.Check(c.Request.Context(), sessionID, actionType)
		if err != nil {
			logger.Error("failed to check rate limit",
				zap.String("action_type", actionType),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalError("Error checking rate limit"))
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.TooManyRequests(message))
			return
		}

		c.Next()
	}
}
