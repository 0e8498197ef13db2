package ledger

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("", middleware.RBACAuthorize(rbacService, "balance", "read"), handler.GetAll)
		balances.GET("/snapshot", middleware.RBACAuthorize(rbacService, "balance", "read"), handler.GetSnapshot)
		balances.POST("/allocate", middleware.RBACAuthorize(rbacService, "balance", "allocate"), middleware.RateLimitByUser(1, 5), handler.Allocate)
	}
}
