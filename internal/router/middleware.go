package router

import (
	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/gin-gonic/gin"
)

// URLMiddleware sets the base URL of the API on the context.
func URLMiddleware(url string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(httputil.ContextURL), url)
		c.Next()
	}
}
