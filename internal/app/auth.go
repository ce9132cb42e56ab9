package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/config"
)

// AuthMiddleware accepts HMAC-signed JWTs or the configured static tokens.
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		tokenStr := parts[1]

		// JWT path
		if cfg.JWTSecret != "" {
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenMalformed
				}
				return []byte(cfg.JWTSecret), nil
			}, jwt.WithLeeway(5*time.Second))
			if err == nil {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if sub, _ := claims["sub"].(string); sub != "" {
						c.Set("subject", sub)
					}
				}
				c.Next()
				return
			}
		}

		// static tokens
		for _, t := range cfg.StaticTokens {
			if tokenStr == strings.TrimSpace(t) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	}
}
