package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole deja pasar solo a los roles listados. Qué rol puede qué
// operación se decide en la tabla de rutas, no aquí.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
