package api

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID returns the id stamped on the request by the logging
// middleware, or an empty string outside of it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogging stamps each request with a uuid and logs the outcome.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)

		start := time.Now()
		c.Next()

		log.Printf("%s %s -> %d (%s) request_id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), id)
	}
}

// APIKeyAuth compares the X-API-Key header against the shared secret
// and rejects mismatches before any handler logic runs, so a bad key
// never costs provider quota.
func APIKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "invalid or missing API key",
				requestIDKey: RequestID(c),
			})
			return
		}
		c.Next()
	}
}
