package middleware

import (
	"errors"
	"net/http"

	"vaketracker-api/internal/auth"
	"vaketracker-api/internal/models"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// TokenValidator interface for dependency injection
type TokenValidator interface {
	ValidateToken(tokenString string) (*models.Claims, error)
}

// Authenticate validates the bearer token and stores the claims on the context
func Authenticate(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		claims, err := validator.ValidateToken(header)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose role is not one of roles
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user context not found"})
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// ClaimsFromContext extracts the authenticated claims set by Authenticate
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok && claims != nil
}

// SetClaims stores claims on the context the way Authenticate does
func SetClaims(c *gin.Context, claims *models.Claims) {
	c.Set(claimsKey, claims)
}
