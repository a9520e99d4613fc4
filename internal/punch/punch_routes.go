package punch

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		punches.GET("", handler.GetAllByMonth)
		punches.POST("/import", middleware.RoleMiddleware("admin", "hr"), handler.ImportScans)
	}
}
