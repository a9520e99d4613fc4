package weekoff

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	groups := r.Group("/week-off-groups")
	groups.Use(middleware.AuthMiddleware())
	{
		groups.GET("", handler.GetAll)
		groups.GET("/:id", handler.GetById)
		groups.POST("", middleware.RoleMiddleware("admin", "hr"), handler.Create)
		groups.PUT("/:id", middleware.RoleMiddleware("admin", "hr"), handler.Update)
		groups.PUT("/:id/members", middleware.RoleMiddleware("admin", "hr"), handler.SetMembers)
		groups.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
	}
}
