package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comunidade/internal/model"
	"comunidade/internal/pkg"
)

const (
	ContextClaimsKey = "claims"
	ContextUserIDKey = "user_id"
)

// Authenticate validates the bearer token and injects the decoded claims.
// Tokens are stateless; nothing is checked against the database here.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token não informado."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token não informado."})
			return
		}

		claims, err := pkg.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido."})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// RequireAdmin trusts the role claim as issued; a role change only takes
// effect for tokens issued afterwards.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsAny, ok := c.Get(ContextClaimsKey)
		claims, _ := claimsAny.(*pkg.Claims)
		if !ok || claims == nil || claims.Role != model.RoleAdministrator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Acesso restrito a administradores."})
			return
		}
		c.Next()
	}
}
