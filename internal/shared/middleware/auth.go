package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/shared/response"
	"authorsite-backend/pkg/jwt"
)

// AdminAuth verifies the bearer token on every admin call. The client-held
// session flag is a UI hint only; authorization is re-checked here each time.
func AdminAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAdminToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
