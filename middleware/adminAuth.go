package middleware

import (
	"net/http"

	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthAdminMiddleware requires a token issued by the admin login.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "invalid token")
			return
		}
		if role != utils.RoleAdmin {
			zap.L().Warn("Non-admin token on admin route", zap.String("subject", subject))
			utils.JSONError(c, http.StatusForbidden, "Unauthorized admin access", "admin role required")
			return
		}

		c.Set("adminID", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
