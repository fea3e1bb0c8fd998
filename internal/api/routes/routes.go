package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/voxprep/voxprep/internal/api/handlers"
	"github.com/voxprep/voxprep/internal/api/middleware"
)

type Deps struct {
	Interview *handlers.InterviewHandler
	Presence  *handlers.PresenceHandler
	Analytics *handlers.AnalyticsHandler // nil when the analytics store is disabled
	WS        *handlers.WSHandler        // nil when redis is disabled
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/interview/start", d.Interview.Start)
	auth.POST("/interview/answer", d.Interview.Answer)
	auth.POST("/interview/presence/analyze", d.Presence.Analyze)

	if d.Analytics != nil {
		auth.GET("/analytics/unified", d.Analytics.Unified)
	}
	if d.WS != nil {
		auth.GET("/ws/interview/:session_id", d.WS.InterviewWS)
	}
}
