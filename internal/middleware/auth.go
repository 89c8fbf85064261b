package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brunosduarte/sindestiva-api/internal/auth"
	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/repository"
)

// ClaimsKey is the gin context key holding the authenticated caller's claims.
const ClaimsKey = "claims"

// Authenticate verifies the bearer token and re-checks the account against
// the user directory on every request: a valid token for a deleted or
// deactivated account is rejected. On success the claims are stored in the
// gin context.
func Authenticate(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, domain.ErrExpiredToken) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify user"})
			return
		}
		if user == nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found or inactive"})
			return
		}

		// Claims reflect the directory, not the token payload, so a role
		// change takes effect on the next request.
		c.Set(ClaimsKey, domain.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})

		c.Next()
	}
}

// RequireAdmin allows only callers whose claims carry the admin role. Must
// run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the authenticated caller's claims from the gin context.
func GetClaims(c *gin.Context) (domain.Claims, bool) {
	if value, exists := c.Get(ClaimsKey); exists {
		if claims, ok := value.(domain.Claims); ok {
			return claims, true
		}
	}
	return domain.Claims{}, false
}
