package middleware

import (
	"net/http"
	"runtime/debug"

	"bepl-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a handler panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				if !c.Writer.Written() {
					response.Error(c, http.StatusInternalServerError, "Internal server error")
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
