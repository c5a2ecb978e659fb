package http

import (
	"github.com/gin-gonic/gin"

	"sppd-activity/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route needs the API key; routes that write are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Auth())
	{
		events.GET("", h.ListEvents)
		events.GET("/:id", h.DetailEvent)
		events.PUT("/:id/disposition", mw.RateLimit(), h.UpdateDisposition)
		events.POST("/:id/record", mw.RateLimit(), h.RecordEvent)
	}

	m := rg.Group("/matrix", mw.Auth())
	{
		m.POST("/slots", h.PlanAppend)
		m.POST("/slots/commit", mw.RateLimit(), h.CommitAppend)
		m.GET("/days/:date", h.DayCells)
	}
}
