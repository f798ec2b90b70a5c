package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// HeaderSessionID identifies the anonymous browser session on public writes
const HeaderSessionID = "X-Session-ID"

// ContextKeySessionID is the gin context key holding the session ID
const ContextKeySessionID = "session_id"

// RequireSession rejects public writes that carry no session header. The ID
// is client-generated and only used to scope rate limiting.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.BadRequest("Session ID required"))
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session ID from gin context
func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeySessionID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
