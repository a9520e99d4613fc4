package shift

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	groups := r.Group("/shift-groups")
	groups.Use(middleware.AuthMiddleware())
	{
		groups.GET("", handler.GetAllGroups)
		groups.GET("/:id", handler.GetGroupById)
		groups.POST("", middleware.RoleMiddleware("admin", "hr"), handler.CreateGroup)
		groups.PUT("/:id", middleware.RoleMiddleware("admin", "hr"), handler.UpdateGroup)
		groups.PUT("/:id/members", middleware.RoleMiddleware("admin", "hr"), handler.SetMembers)
		groups.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.DeleteGroup)
	}

	rotations := r.Group("/shift-rotations")
	rotations.Use(middleware.AuthMiddleware())
	{
		rotations.GET("", handler.GetAllRotations)
		rotations.POST("", middleware.RoleMiddleware("admin", "hr"), handler.CreateRotation)
		rotations.DELETE("/:id", middleware.RoleMiddleware("admin", "hr"), handler.DeleteRotation)
	}
}
