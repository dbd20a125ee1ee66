package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/stats", h.Stats)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/validate", h.Validate)
		group.DELETE("/:id", h.Cancel)
	}

	courts := g.Group("/courts")
	courts.Use(authMiddleware)
	courts.GET("/:id/availability", h.Availability)
}
