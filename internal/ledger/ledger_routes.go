package ledger

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	advances := r.Group("/advances")
	advances.Use(middleware.AuthMiddleware())
	{
		advances.GET("/:employee_id", handler.GetBalance)

		mutations := advances.Group("")
		mutations.Use(middleware.RoleMiddleware("admin", "hr"), middleware.Idempotency(rdb))
		{
			mutations.POST("/credit", handler.Credit)
			mutations.POST("/deduct", handler.Deduct)
		}
	}
}
