package middleware

import (
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"github.com/gin-gonic/gin"
)

// RequireRole guards routes that only the given role may call. It runs after
// AuthMiddleware, which puts the role on the context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("role")
		if !exists {
			abortUnauthorized(c, "Yetkilendirme bilgisi eksik")
			return
		}

		if current != role {
			c.JSON(appErrors.ErrForbidden.StatusCode, gin.H{
				"error":   appErrors.ErrForbidden.Code,
				"message": "Bu işlem için yetkiniz bulunmamaktadır",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
