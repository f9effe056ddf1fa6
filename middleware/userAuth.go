package middleware

import (
	"net/http"
	"strings"

	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// JWTAuthUserMiddleware requires a platform-issued user token and stores its
// subject as "userID" in the context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing bearer token")
			return
		}

		userID, _, err := utils.ExtractClaims(tokenString)
		if err != nil {
			zap.L().Debug("Rejected user token", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "invalid token")
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// CurrentUserID is set by JWTAuthUserMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
