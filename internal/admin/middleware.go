package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

// AuthMiddleware проверяет заголовок X-Admin-Key
func AuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminKey := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(adminKey), []byte(apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger пишет запросы в общий логгер
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithWriter(utils.Log.Writer())
}
