package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

// GatewayMiddleware puts the generation gateway into the request context so
// controllers can fetch it with c.MustGet("gateway").
func GatewayMiddleware(gw *services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("gateway", gw)
		c.Next()
	}
}

// DocumentsMiddleware puts the documents folder path into the request
// context.
func DocumentsMiddleware(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("documents_dir", dir)
		c.Next()
	}
}
