package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/response"
	"github.com/prefeitura-digital/cms-go/types"
)

func AuthorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// RequirePermission guards a module route with the caller's capability row
// for that module. Admins bypass the lookup.
func RequirePermission(module, action string, perms repositories.PermissionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if claims.IsAdmin {
			c.Next()
			return
		}

		perm, err := perms.Find(claims.UserID, module)
		if err != nil || !perm.Allows(action) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this module"})
			return
		}
		c.Next()
	}
}
