package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DougLewin/SuperWeirdOneBudFast/services"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

// AuthMiddleware authenticates dashboard requests. It validates the
// JWT, rejects tokens revoked by sign-out, and stores the user id in
// the gin context for the handlers.
func AuthMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing credentials"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if auth.IsRevoked(claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Signed out"})
			return
		}

		c.Set("uid", claims.UserID)
		c.Next()
	}
}
