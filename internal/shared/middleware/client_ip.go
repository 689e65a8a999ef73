package middleware

import (
	"bepl-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

// ClientIP stores the resolved caller address under "client_ip".
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", utils.ExtractClientIP(c))
		c.Next()
	}
}
