package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/pkg/response"
)

// Permit allows the request through only when the authenticated role
// is in the allowed set. Must run after Auth.
func Permit(allowed ...string) gin.HandlerFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Role missing")
			return
		}
		if _, ok := set[role]; !ok {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}
		c.Next()
	}
}
