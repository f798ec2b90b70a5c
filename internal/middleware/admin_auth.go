package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// SessionCookieName is the cookie carrying the signed admin session token
const SessionCookieName = "admin_session"

// AdminAuth guards the admin API. Every authenticated request slides the
// server-side session's expiry.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
			return
		}

		if err := auth.Authenticate(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
			return
		}

		c.Next()
	}
}
