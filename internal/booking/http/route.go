package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(callerMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListForBooker)
		group.GET("/owner", h.ListForOwner)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Decide)
		group.PATCH("/:id/cancel", h.Cancel)
	}
}
