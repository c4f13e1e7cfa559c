package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	ctxKeyRequestID = "request_id"
)

// RequestID reuses the caller's X-Request-ID or assigns a new UUID, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, reqID)
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}

// AccessLog writes one structured log line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
			"request_id", RequestIDFrom(c))
	}
}
