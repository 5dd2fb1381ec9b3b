package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsAllowHeaders = []string{"Content-Type", "Authorization", HeaderRequestID}
	corsAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

	// read by the calendar page after a CSV download
	corsExposeHeaders = []string{"Content-Disposition", "X-Report-Rows", "X-Report-Archive", HeaderRequestID}
)

// CORSMiddleware echoes the caller's origin. Preflights stop here with 204.
func CORSMiddleware() gin.HandlerFunc {
	allowHeaders := strings.Join(corsAllowHeaders, ", ")
	allowMethods := strings.Join(corsAllowMethods, ", ")
	exposeHeaders := strings.Join(corsExposeHeaders, ", ")

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Expose-Headers", exposeHeaders)
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
