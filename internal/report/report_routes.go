package report

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", handler.Generate)
		reports.POST("/totals", middleware.RoleMiddleware("admin", "hr"), handler.GenerateTotals)
	}
}
