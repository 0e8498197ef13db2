package middleware

import (
	"net/http"

	"go-leave/internal/domain"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize gate-keeps a route on (resource, action) for the role
// set by AuthMiddleware.
func RBACAuthorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr := c.GetString("role")
		if roleStr == "" {
			writeAppError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.Role(roleStr), resource, action)
		if err != nil {
			writeAppError(c, apperror.Wrap(err, apperror.CodeInternalError, "Authorization check failed", http.StatusInternalServerError))
			return
		}

		if !allowed {
			writeAppError(c, apperror.ErrForbidden)
			return
		}

		c.Next()
	}
}

func writeAppError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
