package leaverecord

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/leave-records")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", handler.GetAllByMonth)
		records.POST("", middleware.RoleMiddleware("admin", "hr"), handler.Create)
		records.DELETE("/:id", middleware.RoleMiddleware("admin", "hr"), handler.Delete)
	}
}
