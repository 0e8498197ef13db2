package leave

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	if rdb != nil {
		leaves.Use(middleware.Idempotency(rdb))
	}
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetById)
		leaves.GET("/:id/actions", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetActions)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), middleware.RateLimitByUser(1, 5), handler.Submit)
		leaves.POST("/:id/manager-decision", middleware.RBACAuthorize(rbacService, "leave", "manager_decide"), middleware.RateLimitByUser(2, 10), handler.ManagerDecide)
		leaves.POST("/:id/hr-decision", middleware.RBACAuthorize(rbacService, "leave", "hr_decide"), middleware.RateLimitByUser(2, 10), handler.HRDecide)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "cancel"), middleware.RateLimitByUser(1, 5), handler.Cancel)
	}
}
