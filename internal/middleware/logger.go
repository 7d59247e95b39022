package middleware

import (
	"strings" // Header trimming
	"time"    // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request id generation
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

// RequestLogger tags every request with an id (reusing X-Request-Id when the
// client sends one) and logs the outcome once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if rid == "" {
			rid = uuid.NewString() // Fresh id for untagged requests
		}
		c.Set(RequestIDKey, rid)                   // Handlers log with the same id
		c.Writer.Header().Set("X-Request-Id", rid) // Echo it to the client

		start := time.Now()
		c.Next() // Run the rest of the chain

		entry := logrus.WithFields(logrus.Fields{
			"request_id": rid,                        // Correlation id
			"method":     c.Request.Method,           // HTTP method
			"path":       c.Request.URL.Path,         // Path without query
			"status":     c.Writer.Status(),          // Response status
			"latency":    time.Since(start).String(), // Time spent in handlers
			"client_ip":  c.ClientIP(),               // Caller address
		})
		if principal := Principal(c); principal != "" {
			entry = entry.WithField("principal", principal) // Authenticated caller
		}
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Warn("request completed with errors")
		default:
			entry.Info("request completed")
		}
	}
}
