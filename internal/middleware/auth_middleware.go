package middleware

import (
	"net/http"
	"strings"

	"github.com/engagecrm/engage-backend/internal/config"
	"github.com/engagecrm/engage-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates bearer tokens and puts the claims in the
// request context for downstream handlers.
func JWTAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	const bearerSchema = "Bearer "

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			return
		}

		claims, err := jwt.Parse(cfg.JWT.Secret, authHeader[len(bearerSchema):])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}
