package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Browser clients call the analyze endpoint directly from arbitrary origins,
// so the CORS policy is deliberately permissive.
const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS sets permissive CORS headers and answers preflight requests with an
// empty success response.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", allowedHeaders)

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			c.Abort()
			return
		}

		c.Next()
	}
}
