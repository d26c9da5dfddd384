package middleware

import (
	"net/http"
	"strings"

	"esports-api/internal/services"
	"esports-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const adminSubjectKey = "admin_subject"

func AdminAuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := service.ParseAdminToken(extractBearer(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.Error("A valid admin token is required to access this endpoint."))
			return
		}
		c.Set(adminSubjectKey, claims.Subject)
		c.Next()
	}
}

// AdminSubject returns the subject of the verified admin token.
func AdminSubject(c *gin.Context) string {
	return c.GetString(adminSubjectKey)
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
