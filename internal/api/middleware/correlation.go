package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader is the header carrying the per-request correlation ID.
const CorrelationIDHeader = "X-Correlation-ID"

// correlationIDKey is the gin context key the ID is stored under.
const correlationIDKey = "correlation_id"

// CorrelationID attaches a correlation ID to every request. An incoming
// X-Correlation-ID is honored so callers can trace requests across
// services; otherwise a fresh UUID is generated. The ID is echoed on the
// response and exposed via CorrelationIDFromContext for log enrichment.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(correlationIDKey, id)
		c.Writer.Header().Set(CorrelationIDHeader, id)
		c.Next()
	}
}

// CorrelationIDFromContext returns the request's correlation ID, or an
// empty string when the middleware did not run.
func CorrelationIDFromContext(c *gin.Context) string {
	return c.GetString(correlationIDKey)
}
