package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/domain"
	"scholarhub/internal/pkg/jwt"
	"scholarhub/internal/pkg/response"
)

// UserLoader fetches the full user record for the active-account
// check. Satisfied by *repository.UserRepository.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth is the request gate for protected routes: it requires a Bearer
// access token, attaches user_id and role to the context, and rejects
// disabled accounts. Expired and malformed tokens are deliberately not
// distinguished to the caller.
func Auth(codec *jwt.Codec, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := codec.ParseAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		if users != nil {
			user, err := users.GetByID(c.Request.Context(), claims.UserID)
			if err != nil {
				response.AbortError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
				return
			}
			if !user.IsActive {
				response.AbortError(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account disabled")
				return
			}
			c.Set("user", user)
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
