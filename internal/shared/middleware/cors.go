package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS adapts rs/cors to gin. Paths matching any of skip are left alone so
// handlers with their own CORS policy (the resume proxy) can answer themselves.
func CORS(allowedOrigins []string, skip ...func(path string) bool) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}

	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", RequestIDHeader},
		AllowCredentials: !allowAll,
		MaxAge:           600,
	}
	if allowAll {
		opts.AllowedOrigins = []string{"*"}
	}
	c := cors.New(opts)

	return func(ctx *gin.Context) {
		for _, fn := range skip {
			if fn(ctx.Request.URL.Path) {
				ctx.Next()
				return
			}
		}

		c.HandlerFunc(ctx.Writer, ctx.Request)

		// Preflight headers are set by rs/cors; nothing downstream should run.
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

// HasSuffix returns a skip predicate for CORS matching paths ending in suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(path string) bool {
		return strings.HasSuffix(path, suffix)
	}
}
