package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the business profile routes. Reading the profile
// and logo is public; changing them needs staff auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/business")

	group.GET("", h.Get)
	group.GET("/logo", h.ServeLogo)

	staff := group.Group("")
	staff.Use(authMiddleware)
	{
		staff.PUT("", h.Update)
		staff.PUT("/logo", h.UploadLogo)
	}
}
