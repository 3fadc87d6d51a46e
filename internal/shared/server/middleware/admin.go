package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coffee-backend/internal/shared/server/respond"
)

// AdminAuth guards admin routes with a static bearer password. An empty
// configured password disables admin access entirely.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(password) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "admin access is not configured", nil)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials", nil)
			return
		}

		supplied := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials", nil)
			return
		}

		c.Next()
	}
}
