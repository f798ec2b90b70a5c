// Package router wires the HTTP surface: public submission, collaboration
// and event endpoints, and the cookie-guarded admin API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maydeploy/event-feedback-app/internal/di"
	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/middleware"
	"github.com/maydeploy/event-feedback-app/pkg/response"
)

// Config holds router settings
type Config struct {
	// CORSOrigin is the SPA origin allowed to call the API
	CORSOrigin string
}

// New builds the gin engine with every route registered
func New(c *di.Container, cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if cfg.CORSOrigin != "" {
		r.Use(middleware.CORS(cfg.CORSOrigin))
	}

	// Unknown paths still answer with the JSON envelope
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.NotFound("Route not found"))
	})

	api := r.Group("/api")
	{
		api.GET("/health", c.HealthHandler.Health)

		submissions := api.Group("/submissions")
		{
			submissions.POST("",
				middleware.RequireSession(),
				middleware.RateLimit(c.RateLimitService, domain.ActionSubmission),
				c.SubmissionHandler.Create)
			submissions.GET("", c.SubmissionHandler.List)
			submissions.GET("/:id", c.SubmissionHandler.GetByID)
			submissions.POST("/:id/vote", c.SubmissionHandler.Vote)
		}

		api.POST("/collaborations",
			middleware.RequireSession(),
			middleware.RateLimit(c.RateLimitService, domain.ActionCollaboration),
			c.CollaborationHandler.Create)

		events := api.Group("/events")
		{
			events.GET("", c.EventHandler.List)
			events.GET("/:id", c.EventHandler.GetByID)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", c.AdminHandler.Login)
			admin.POST("/logout", c.AdminHandler.Logout)

			authed := admin.Group("", middleware.AdminAuth(c.AuthService))
			{
				authed.GET("/pending", c.AdminHandler.ListPending)
				authed.GET("/published", c.AdminHandler.ListPublished)
				authed.PUT("/submissions/:id/approve", c.AdminHandler.Approve)
				authed.DELETE("/submissions/:id/reject", c.AdminHandler.Reject)
				authed.PUT("/submissions/:id/status", c.AdminHandler.UpdateStatus)
				authed.POST("/submissions/:id/response", c.AdminHandler.AddResponse)
				authed.DELETE("/submissions/:id", c.AdminHandler.DeleteSubmission)

				authed.GET("/collaborations", c.AdminHandler.ListCollaborations)
				authed.PUT("/collaborations/:id", c.AdminHandler.UpdateCollaboration)

				authed.POST("/events", c.AdminHandler.CreateEvent)
				authed.PUT("/events/:id", c.AdminHandler.UpdateEvent)
				authed.DELETE("/events/:id", c.AdminHandler.DeleteEvent)
			}
		}
	}

	return r
}
