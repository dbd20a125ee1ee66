package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the booking settings routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/settings")

	group.Use(authMiddleware)
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
	}
}
