package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
)

// TokenCookieName is the cookie carrying the admin session token.
const TokenCookieName = "token"

// Context keys set by Auth for downstream handlers.
const (
	ContextAdminID  = "adminID"
	ContextUsername = "adminUsername"
)

// Auth guards admin-only routes. The token is read from the session cookie
// first, then from a Bearer authorization header. The middleware has no
// side effects beyond accept/reject and attaching the verified identity to
// the request context.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := manager.Validate(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token.")
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
